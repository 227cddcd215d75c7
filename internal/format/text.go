// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package format

import (
	"bufio"
	"fmt"
	"io"

	aclpkg "grimm.is/aclcheck/internal/acl"
	"grimm.is/aclcheck/internal/classify"
	aclerrors "grimm.is/aclcheck/internal/errors"
)

// TextWriter renders one human-readable line per conflict, with a
// per-ACL header and footer around the begin/flush signals.
type TextWriter struct {
	out    *bufio.Writer
	detail int

	currentACL string
	opened     bool
}

// NewTextWriter returns a TextWriter writing to w at the given detail
// level (1-4).
func NewTextWriter(w io.Writer, detail int) (*TextWriter, error) {
	if detail < Detail1 || detail > Detail4 {
		return nil, aclerrors.Errorf(aclerrors.KindValidation, "format: detail level %d outside [1,4]", detail)
	}
	return &TextWriter{out: bufio.NewWriter(w), detail: detail}, nil
}

// WriteNewACL implements Writer.
func (w *TextWriter) WriteNewACL(name string) error {
	if w.opened {
		fmt.Fprintf(w.out, "=== end acl %q ===\n", w.currentACL)
	}
	w.currentACL = name
	w.opened = true
	_, err := fmt.Fprintf(w.out, "=== acl %q ===\n", name)
	return err
}

// WriteConflict implements Writer.
func (w *TextWriter) WriteConflict(c *classify.Conflict) error {
	line := w.renderLine(c)
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// Flush implements Writer.
func (w *TextWriter) Flush() error {
	if w.opened {
		fmt.Fprintf(w.out, "=== end acl %q ===\n", w.currentACL)
		w.opened = false
	}
	return w.out.Flush()
}

func (w *TextWriter) renderLine(c *classify.Conflict) string {
	line := fmt.Sprintf("%s: X=%s Y=%s", c.Kind, c.RuleX.Name(), c.RuleY.Name())

	if w.detail >= Detail2 {
		line += fmt.Sprintf(" proto=%s/%s src_ip=%s/%s action=%s/%s",
			aclpkg.ProtocolName(c.RuleX.Protocol()), aclpkg.ProtocolName(c.RuleY.Protocol()),
			aclpkg.RenderIPRange(c.RuleX.SrcIP()), aclpkg.RenderIPRange(c.RuleY.SrcIP()),
			c.RuleX.Action(), c.RuleY.Action())
	}

	if w.detail >= Detail3 {
		line += fmt.Sprintf(" src_port=%s/%s dst_ip=%s/%s dst_port=%s/%s",
			aclpkg.RenderPortSpec(c.RuleX.SrcPort()), aclpkg.RenderPortSpec(c.RuleY.SrcPort()),
			aclpkg.RenderIPRange(c.RuleX.DstIP()), aclpkg.RenderIPRange(c.RuleY.DstIP()),
			aclpkg.RenderPortSpec(c.RuleX.DstPort()), aclpkg.RenderPortSpec(c.RuleY.DstPort()))
	}

	if w.detail >= Detail4 {
		line += fmt.Sprintf(" relations=[proto=%s src_ip=%s dst_ip=%s src_port=%s dst_port=%s]",
			c.Dimensions[classify.DimProtocol], c.Dimensions[classify.DimSrcIP], c.Dimensions[classify.DimDstIP],
			c.Dimensions[classify.DimSrcPort], c.Dimensions[classify.DimDstPort])
	}

	return line
}
