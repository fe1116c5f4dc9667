package book

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// TokenLen is the width of one ply in a history string: polarity marker plus coordinate.
	TokenLen = 3
	// MaxDepth is the longest history, in characters, the book is indexed for (10 plies).
	MaxDepth = 30
)

//go:embed data/openings.gam
var defaultBook []byte

// Book maps a history prefix to the token that followed it. It is read-only after Load.
type Book struct {
	next    map[string]string
	lines   int
	skipped int
}

// Default returns the book shipped with the module.
func Default() *Book {
	b, err := Load(bytes.NewReader(defaultBook))
	if err != nil {
		panic(fmt.Sprintf("embedded opening book is unreadable: %v", err))
	}
	return b
}

// Load indexes one game per line. For every prefix of whole tokens shorter than MaxDepth the token
// that followed it is recorded; later lines overwrite earlier ones. A line is read up to its first
// malformed token, and lines without a single valid token are skipped.
func Load(r io.Reader) (*Book, error) {
	b := &Book{next: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := validPrefix(line)
		if tokens == 0 {
			b.skipped++
			log.Debug().Str("line", line).Msg("skipping book line without moves")
			continue
		}
		b.lines++
		for i := 0; i < tokens && i*TokenLen < MaxDepth; i++ {
			at := i * TokenLen
			b.next[line[:at]] = line[at : at+TokenLen]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read opening book: %w", err)
	}
	log.Debug().Int("lines", b.lines).Int("skipped", b.skipped).Int("entries", len(b.next)).Msg("loaded opening book")
	return b, nil
}

// validPrefix counts the leading well-formed tokens of line.
func validPrefix(line string) int {
	n := 0
	for at := 0; at+TokenLen <= len(line); at += TokenLen {
		if _, err := ParseToken(line[at : at+TokenLen]); err != nil {
			break
		}
		n++
	}
	return n
}

// Lookup returns the token recorded after prefix.
func (b *Book) Lookup(prefix string) (string, bool) {
	token, ok := b.next[prefix]
	return token, ok
}

// Size is the number of indexed prefixes.
func (b *Book) Size() int {
	return len(b.next)
}

// Lines is the number of games indexed; Skipped the number of lines rejected.
func (b *Book) Lines() int   { return b.lines }
func (b *Book) Skipped() int { return b.skipped }
