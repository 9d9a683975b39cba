package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// DefaultEncoding is the GPT-2 byte-level BPE vocabulary that BART checkpoints share.
const DefaultEncoding = "r50k_base"

var loaderOnce sync.Once

type implTiktoken struct {
	encoding string
	tkm      *tiktoken.Tiktoken
}

// New loads the named BPE encoding from the embedded vocabulary files.
// No network access is needed.
func New(encoding string) (Tokenizer, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	loaderOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
	})

	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load encoding %q: %w", encoding, err)
	}

	return &implTiktoken{
		encoding: encoding,
		tkm:      tkm,
	}, nil
}
