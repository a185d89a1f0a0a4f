package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// ImageText runs Google Vision text detection over raw image bytes and
// returns the full recognized text block.
func ImageText(ctx context.Context, imgBytes []byte) (string, error) {
	credPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	var client *vision.ImageAnnotatorClient
	var err error
	if credPath != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credPath))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to init OCR client: %w", err)
	}
	defer client.Close()

	img := &visionpb.Image{Content: imgBytes}
	anns, err := client.DetectTexts(ctx, img, nil, 1)
	if err != nil {
		return "", fmt.Errorf("could not extract text from image: %w", err)
	}
	if len(anns) == 0 || anns[0].Description == "" {
		return "", errors.New("no text detected in image")
	}
	return anns[0].Description, nil
}
