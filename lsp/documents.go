package lsp

import (
	"sync"

	"github.com/dhamidi/minilab/calc"
	"github.com/dhamidi/minilab/worksheet"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is an open worksheet and its latest evaluation.
type Document struct {
	URI     protocol.DocumentUri
	Results []worksheet.Result
}

// ResultAt returns the result for a 0-based line.
func (d *Document) ResultAt(line int) (worksheet.Result, bool) {
	for _, r := range d.Results {
		if r.Line-1 == line {
			return r, true
		}
	}
	return worksheet.Result{}, false
}

// Documents holds the open documents of a session.
type Documents struct {
	mu   sync.RWMutex
	opts []calc.Option
	docs map[protocol.DocumentUri]*Document
}

func NewDocuments(opts ...calc.Option) *Documents {
	return &Documents{
		opts: opts,
		docs: make(map[protocol.DocumentUri]*Document),
	}
}

// Update replaces the content of uri and re-evaluates it.
func (d *Documents) Update(uri protocol.DocumentUri, content []byte) *Document {
	doc := &Document{
		URI:     uri,
		Results: worksheet.Evaluate(content, d.opts...),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = doc
	return doc
}

func (d *Documents) Get(uri protocol.DocumentUri) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

func (d *Documents) Remove(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}
