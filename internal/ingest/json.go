// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package ingest

import (
	"encoding/json"
	"io"

	"go.uber.org/multierr"

	aclpkg "grimm.is/aclcheck/internal/acl"
	aclerrors "grimm.is/aclcheck/internal/errors"
)

// JSONParser ingests ACLs from a JSON document: a top-level array of ACL
// objects, or a single ACL object, structurally identical to the YAML
// mapping shape.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(r io.Reader) ([]*aclpkg.ACL, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, aclerrors.Wrapf(err, aclerrors.KindValidation, "ingest: json parse")
	}

	var docs []aclDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		var one aclDoc
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.KindValidation, "ingest: json decode")
		}
		docs = []aclDoc{one}
	}

	var acls []*aclpkg.ACL
	var errs error
	for _, d := range docs {
		a, err := buildACL(d)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		acls = append(acls, a)
	}

	return acls, errs
}
