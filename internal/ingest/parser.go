// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package ingest

import (
	"io"

	aclpkg "grimm.is/aclcheck/internal/acl"
	aclerrors "grimm.is/aclcheck/internal/errors"
)

// Parser produces a batch of ACLs from a stream. Errors from individual
// malformed documents are collected and returned together (via
// go.uber.org/multierr) alongside whatever ACLs did parse successfully;
// callers should not assume a non-nil error means acls is empty.
type Parser interface {
	Parse(r io.Reader) ([]*aclpkg.ACL, error)
}

// ForFormat returns the Parser for the named format ("yaml" or "json").
func ForFormat(format string) (Parser, error) {
	switch format {
	case "yaml":
		return YAMLParser{}, nil
	case "json":
		return JSONParser{}, nil
	default:
		return nil, aclerrors.Errorf(aclerrors.KindValidation, "ingest: unrecognized format %q", format)
	}
}
