package lsd

// parseRoot implements spec.md §4.3's "Top-level entry": a root List, a
// root Level, or an unbraced level body, in that order of preference.
func parseRoot(s *runeStream) (*LSD, error) {
	if _, err := s.readNWS(); err != nil {
		return nil, err
	}

	if list, ok, err := parseList(s); err != nil {
		return nil, err
	} else if ok {
		if err := checkFileEnd(s); err != nil {
			return nil, err
		}
		return list, nil
	}

	if level, ok, err := parseBracedLevel(s); err != nil {
		return nil, err
	} else if ok {
		if err := checkFileEnd(s); err != nil {
			return nil, err
		}
		return level, nil
	}

	body, err := parseLevelBody(s, false)
	if err != nil {
		return nil, err
	}
	return NewLevel(body), nil
}

// checkFileEnd consumes trailing NWS and fails if any character remains,
// per spec.md §4.3 step 2/4 and the UnexpectedCharAtFileEnd error.
func checkFileEnd(s *runeStream) error {
	if _, err := s.readNWS(); err != nil {
		return err
	}
	_, ok, err := s.peek()
	if err != nil {
		return err
	}
	if ok {
		return newError(UnexpectedCharAtFileEnd)
	}
	return nil
}

// parseBracedLevel reads a '{' NWS LevelBody '}' level. It is
// peek-committed on the opening brace.
func parseBracedLevel(s *runeStream) (*LSD, bool, error) {
	ch, ok, err := s.peek()
	if err != nil {
		return nil, false, err
	}
	if !ok || ch != '{' {
		return nil, false, nil
	}
	s.advance()

	if _, err := s.readNWS(); err != nil {
		return nil, false, err
	}

	level, err := parseLevelBody(s, true)
	if err != nil {
		return nil, false, err
	}
	return NewLevel(level), true, nil
}

// parseLevelBody reads a (possibly empty) sequence of `KeyPath NWS LSD NWS`
// entries, integrating each into the returned Level via the merge algorithm
// (spec.md §4.3). requireClose selects between the braced flavour (which
// must see a closing '}') and the top-level flavour (which reads to EOF).
func parseLevelBody(s *runeStream, requireClose bool) (*Level, error) {
	level := NewEmptyLevel()

	for {
		if requireClose {
			ch, ok, err := s.peek()
			if err != nil {
				return nil, err
			}
			if ok && ch == '}' {
				s.advance()
				return level, nil
			}
		}

		keyPath, ok, err := parseKeyPath(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			if requireClose {
				return nil, newError(ExpectedKeyOrEnd)
			}
			return level, nil
		}

		if _, err := s.readNWS(); err != nil {
			return nil, err
		}

		// The value/list/level following a key always stops on an
		// unquoted '}', even in the top-level (unbraced) flavour, matching
		// the reference implementation's uniform stop character.
		value, ok, err := parseLSD(s, '}')
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newError(ExpectedLSDAfterKey)
		}

		if _, err := s.readNWS(); err != nil {
			return nil, err
		}

		if err := integrate(level, keyPath, value); err != nil {
			return nil, err
		}
	}
}

// parseKeyPath reads one-or-more KeyParts separated by '.'.
func parseKeyPath(s *runeStream) ([]string, bool, error) {
	first, ok, err := s.readKeyPart()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	parts := []string{first}
	for {
		ch, ok, err := s.peek()
		if err != nil {
			return nil, false, err
		}
		if !ok || ch != '.' {
			break
		}
		s.advance()

		part, ok, err := s.readKeyPart()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, newError(ExpectedKeyPartAfterKeySeparator)
		}
		parts = append(parts, part)
	}
	return parts, true, nil
}

// parseLSD reads a list, a level, or a value, in that fixed order of
// preference (spec.md §4.3's "Value disambiguation"). stop is passed
// through to the value reader's terminator set.
func parseLSD(s *runeStream, stop rune) (*LSD, bool, error) {
	if list, ok, err := parseList(s); err != nil {
		return nil, false, err
	} else if ok {
		return list, true, nil
	}

	if level, ok, err := parseBracedLevel(s); err != nil {
		return nil, false, err
	} else if ok {
		return level, true, nil
	}

	text, ok, err := s.readConcatenated(isValueTerminator(stop))
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return NewValue(text), true, nil
}

// parseList reads a '[' NWS (ListItem NWS)* ']' list. It is peek-committed
// on the opening bracket.
func parseList(s *runeStream) (*LSD, bool, error) {
	ch, ok, err := s.peek()
	if err != nil {
		return nil, false, err
	}
	if !ok || ch != '[' {
		return nil, false, nil
	}
	s.advance()

	if _, err := s.readNWS(); err != nil {
		return nil, false, err
	}

	items := []*LSD{}
	for {
		ch, ok, err := s.peek()
		if err != nil {
			return nil, false, err
		}
		if ok && ch == ']' {
			s.advance()
			break
		}

		item, ok, err := parseListItem(s)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, newError(ExpectedListLSDOrEnd)
		}
		items = append(items, item)

		if _, err := s.readNWS(); err != nil {
			return nil, false, err
		}
	}
	return NewList(items), true, nil
}

// parseListItem reads one list element: a nested list, a level, or a
// list-context value (spec.md §4.3's List grammar).
func parseListItem(s *runeStream) (*LSD, bool, error) {
	if list, ok, err := parseList(s); err != nil {
		return nil, false, err
	} else if ok {
		return list, true, nil
	}

	if level, ok, err := parseBracedLevel(s); err != nil {
		return nil, false, err
	} else if ok {
		return level, true, nil
	}

	text, ok, err := s.readConcatenated(isListValueTerminator)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return NewValue(text), true, nil
}

// integrate applies the merge algorithm (spec.md §4.3) for one parsed
// (keyPath, value) entry against the accumulating level. Because
// intermediate key-path segments descend into the SAME live sub-Level
// object across repeated entries (rather than building a disposable
// single-entry subtree and merging it in after the fact), disjoint-path
// merging falls out of ordinary map mutation; only the final segment needs
// the explicit collision/merge decision the spec's algorithm describes.
func integrate(level *Level, keyPath []string, value *LSD) error {
	cur := level
	for i, part := range keyPath {
		last := i == len(keyPath)-1

		existing, ok := cur.Get(part)
		if !ok {
			if last {
				cur.Set(part, value)
				return nil
			}
			next := NewEmptyLevel()
			cur.Set(part, NewLevel(next))
			cur = next
			continue
		}

		if last {
			return mergeLeaf(cur, part, existing, value)
		}

		if !existing.IsLevel() {
			return newError(KeyCollisionShouldBeLevelButIsNot)
		}
		cur, _ = existing.Level()
	}
	return nil
}

// mergeLeaf resolves a collision at the final key-path segment: recursively
// merging if both the existing and incoming nodes are Levels, or failing
// with the appropriate ParseError otherwise, per spec.md §4.3's merge
// algorithm.
func mergeLeaf(level *Level, key string, existing, incoming *LSD) error {
	if incoming.IsLevel() && existing.IsLevel() {
		existingLevel, _ := existing.Level()
		incomingLevel, _ := incoming.Level()
		return mergeLevelInto(existingLevel, incomingLevel)
	}
	if incoming.IsLevel() {
		return newError(KeyCollisionShouldBeLevelButIsNot)
	}
	return newCollisionError(key)
}

// mergeLevelInto merges source's entries into target in place, recursing
// through nested Levels and failing on the same collisions mergeLeaf would,
// per spec.md §4.3's merge algorithm / §GLOSSARY "Merge".
func mergeLevelInto(target, source *Level) error {
	var err error
	source.Range(func(key string, value *LSD) bool {
		existing, ok := target.Get(key)
		if !ok {
			target.Set(key, value)
			return true
		}
		if e := mergeLeaf(target, key, existing, value); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}
