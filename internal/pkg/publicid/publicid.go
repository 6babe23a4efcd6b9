// Package publicid generates the human-shareable reference codes printed on
// client emails and the admin list, e.g. "VAG-8F3K2". Codes are random, not
// sequential, so they leak nothing about request volume.
package publicid

import (
	"crypto/rand"
	"fmt"
)

const (
	prefix   = "VAG-"
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLen  = 5
)

func New() string {
	buf := make([]byte, codeLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("publicid: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + string(buf)
}
