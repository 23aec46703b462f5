package host

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFace returns Go Regular at size points, parsed once per process.
func DefaultFace(size float64) (text.Face, error) {
	src, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("host: load Go Regular: %w", err)
	}
	return src.Face(size), nil
}
