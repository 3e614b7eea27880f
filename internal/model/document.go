package model

// Document is the result of parsing one decoded input file.
type Document struct {
	Err      error             `json:"-"`
	ID       string            `json:"id"`
	Source   string            `json:"source"`
	RawText  string            `json:"raw_text"`
	Error    string            `json:"error,omitempty"`
	Records  []StatementRecord `json:"records"`
	Segments int               `json:"segments"`
	Dropped  int               `json:"dropped"`
}

// OK reports whether the document parsed without error.
func (d *Document) OK() bool {
	return d.Err == nil
}

// SetErr records a per-document failure.
func (d *Document) SetErr(err error) {
	d.Err = err
	if err != nil {
		d.Error = err.Error()
	}
}
