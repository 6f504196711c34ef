package lib

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/yeqown/go-qrcode"
)

// RenderQRCode encodes text as a QR image using the encoder defaults.
func RenderQRCode(text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("nothing to encode")
	}
	qrc, err := qrcode.New(text)
	if err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp("", "qrc-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "code.jpeg")
	if err := qrc.Save(out); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", out, err.Error())
		return nil, err
	}
	return os.ReadFile(out)
}
