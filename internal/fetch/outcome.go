// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import "fmt"

// Kind identifies the terminal state of one entry.
type Kind int

const (
	// Skipped means the entry had no URL; nothing was requested.
	Skipped Kind = iota
	// Saved means HTTP 200 was received and the body written to disk.
	Saved
	// HTTPError means the server answered with a status other than 200.
	HTTPError
	// Failure means the request never completed or the file could not be written.
	Failure
)

var kindNames = map[Kind]string{
	Skipped:   "skipped",
	Saved:     "saved",
	HTTPError: "http_error",
	Failure:   "failure",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the result of processing a single entry. Which fields are set
// depends on Kind: Path, Ext and Bytes for Saved, StatusCode for HTTPError,
// Err for Failure.
type Outcome struct {
	Kind Kind
	ID   string
	URL  string

	Path  string
	Ext   string
	Bytes int

	StatusCode int
	Err        error
}

// Message returns the console status line for the outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case Skipped:
		return fmt.Sprintf("[AVISO] Logo de %s não encontrado. Baixe manualmente se necessário.", o.ID)
	case Saved:
		return fmt.Sprintf("[OK] %s%s baixado com sucesso.", o.ID, o.Ext)
	case HTTPError:
		return fmt.Sprintf("[ERRO] Não foi possível baixar %s: status %d", o.ID, o.StatusCode)
	default:
		return fmt.Sprintf("[ERRO] Falha ao baixar %s: %v", o.ID, o.Err)
	}
}
