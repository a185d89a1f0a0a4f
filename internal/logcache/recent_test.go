package logcache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentNewestFirst(t *testing.T) {
	Reset()
	for i := 0; i < 5; i++ {
		Push(Entry{CertificateID: fmt.Sprintf("CERT-2020-%04d", i)})
	}

	got := Recent(3)
	assert.Len(t, got, 3)
	assert.Equal(t, "CERT-2020-0004", got[0].CertificateID)
	assert.Equal(t, "CERT-2020-0002", got[2].CertificateID)
}

func TestRingCapped(t *testing.T) {
	Reset()
	for i := 0; i < keep+20; i++ {
		Push(Entry{Score: i})
	}

	got := Recent(keep + 20)
	assert.Len(t, got, keep)
	assert.Equal(t, keep+19, got[0].Score)
}

func TestRecentMoreThanStored(t *testing.T) {
	Reset()
	Push(Entry{Verdict: "Verified"})
	got := Recent(10)
	assert.Len(t, got, 1)
}
