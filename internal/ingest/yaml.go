// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package ingest

import (
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	aclpkg "grimm.is/aclcheck/internal/acl"
	aclerrors "grimm.is/aclcheck/internal/errors"
)

// YAMLParser ingests ACLs from a YAML stream: either a sequence of
// --- separated documents, each an ACL mapping or a list of ACL
// mappings, or a single document of either shape.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(r io.Reader) ([]*aclpkg.ACL, error) {
	dec := yaml.NewDecoder(r)

	var acls []*aclpkg.ACL
	var errs error

	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if err == io.EOF {
				break
			}
			errs = multierr.Append(errs, aclerrors.Wrapf(err, aclerrors.KindValidation, "ingest: yaml document parse"))
			continue
		}

		content := &node
		if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
			content = node.Content[0]
		}

		var docs []aclDoc
		if content.Kind == yaml.SequenceNode {
			if err := content.Decode(&docs); err != nil {
				errs = multierr.Append(errs, aclerrors.Wrapf(err, aclerrors.KindValidation, "ingest: yaml list decode"))
				continue
			}
		} else {
			var one aclDoc
			if err := content.Decode(&one); err != nil {
				errs = multierr.Append(errs, aclerrors.Wrapf(err, aclerrors.KindValidation, "ingest: yaml document decode"))
				continue
			}
			docs = []aclDoc{one}
		}

		for _, d := range docs {
			a, err := buildACL(d)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			acls = append(acls, a)
		}
	}

	return acls, errs
}
