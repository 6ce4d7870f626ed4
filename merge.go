package l10n

// Merge combines documents into a new one, later documents winning on
// conflict at every nesting level. When both sides of a key hold documents
// they are merged recursively; anything else, arrays included, replaces the
// accumulated value wholesale. Nil inputs are skipped. No input is mutated.
func Merge(documents ...Document) Document {
	result := make(Document)
	for _, doc := range documents {
		if doc == nil {
			continue
		}
		result = mergeDocuments(result, doc)
	}
	return result
}

// mergeDocuments returns a fresh document so neither input is ever written to.
func mergeDocuments(base, overlay Document) Document {
	out := make(Document, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}

	for key, value := range overlay {
		existing, haveDoc := asDocument(out[key])
		incoming, incomingDoc := asDocument(value)
		if haveDoc && incomingDoc {
			out[key] = mergeDocuments(existing, incoming)
			continue
		}
		out[key] = value
	}

	return out
}

// StrictMerge overwrites values in target from the sources, in place, and
// returns target. Only keys already present in target are touched; keys that
// exist solely in a source are ignored at every depth, so target's key shape
// acts as a fixed schema. An empty target is returned unchanged.
func StrictMerge(target Document, sources ...Document) Document {
	if len(target) == 0 {
		return target
	}

	for _, source := range sources {
		if source == nil {
			continue
		}
		strictOverwrite(target, source)
	}

	return target
}

func strictOverwrite(target, source Document) {
	for key, incoming := range source {
		current, present := target[key]
		if !present {
			continue
		}

		currentDoc, haveDoc := asDocument(current)
		incomingDoc, isDoc := asDocument(incoming)
		if haveDoc && isDoc {
			strictOverwrite(currentDoc, incomingDoc)
			continue
		}

		target[key] = incoming
	}
}
