package haiku

// TrieNode is a prefix tree over lowercase words. Only 'a'-'z' and the apostrophe are
// stored; words containing other characters are skipped.
type TrieNode struct {
	isWord   bool
	children [27]*TrieNode
}

func (n *TrieNode) Insert(word string) {
	if len(word) == 0 {
		n.isWord = true
		return
	}

	idx, ok := childIndex(word[0])
	if !ok {
		return
	}

	if child := n.children[idx]; child == nil {
		n.children[idx] = &TrieNode{}
	}
	n.children[idx].Insert(word[1:])
}

func (n *TrieNode) HasPrefix(str string) bool {
	if n == nil {
		return false
	}
	if len(str) == 0 {
		return n.isWord
	}

	return n.Child(str[0]).HasPrefix(str[1:])
}

func (n *TrieNode) Child(ch byte) *TrieNode {
	idx, ok := childIndex(ch)
	if !ok {
		return nil
	}
	return n.children[idx]
}

func (n *TrieNode) IsWord() bool {
	return n.isWord
}

func childIndex(ch byte) (int, bool) {
	switch {
	case 'a' <= ch && ch <= 'z':
		return int(ch - 'a'), true
	case ch == '\'':
		return 26, true
	}
	return 0, false
}
