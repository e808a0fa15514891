package proxy

import "slices"

// linearize returns d followed by its ancestors, most specific first.
//
// The order is the C3 merge of the parents' linearizations, so every
// description precedes its own ancestors and parents are otherwise taken in
// declaration order. Unlike classic C3 the parent list itself is not a merge
// constraint: listing both A and a B that extends A is accepted and orders B
// before A.
func linearize(d *Description) ([]*Description, error) {
	return linearizeVisit(d, make(map[*Description]bool))
}

func linearizeVisit(d *Description, visiting map[*Description]bool) ([]*Description, error) {
	if visiting[d] {
		return nil, configErr(d, "", "extension cycle through %s", d.Name)
	}

	visiting[d] = true
	defer delete(visiting, d)

	seqs := make([][]*Description, 0, len(d.Extends))
	for i, p := range d.Extends {
		if p == nil {
			return nil, configErr(d, "", "parent %d is nil", i)
		}

		l, err := linearizeVisit(p, visiting)
		if err != nil {
			return nil, err
		}

		seqs = append(seqs, l)
	}

	merged, ok := merge(seqs)
	if !ok {
		return nil, configErr(d, "", "inconsistent extension order of %v", d.Extends)
	}

	return append([]*Description{d}, merged...), nil
}

// merge is the C3 merge. It reports false when no consistent order exists.
func merge(seqs [][]*Description) ([]*Description, bool) {
	var out []*Description

	for {
		seqs = slices.DeleteFunc(seqs, func(s []*Description) bool { return len(s) == 0 })
		if len(seqs) == 0 {
			return out, true
		}

		var head *Description
		for _, s := range seqs {
			if !inTail(s[0], seqs) {
				head = s[0]
				break
			}
		}

		if head == nil {
			return nil, false
		}

		out = append(out, head)

		for i := range seqs {
			if seqs[i][0] == head {
				seqs[i] = seqs[i][1:]
			}
		}
	}
}

func inTail(d *Description, seqs [][]*Description) bool {
	for _, s := range seqs {
		if slices.Contains(s[1:], d) {
			return true
		}
	}

	return false
}
