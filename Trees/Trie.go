package Trees

// A node in the Trie. terminal marks the end of an inserted word; a node
// with no children and terminal==false is never kept.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

func makeTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a prefix tree over strings, keyed rune by rune. It isn't a
// Tree[string]: words aren't ordered, and lookups cost O(len(word))
// regardless of how many words are stored.
type Trie struct {
	root *trieNode
	sz   uint
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: makeTrieNode()}
}

// find the node spelling word, nil if no such path exists.
func (u *Trie) find(word string) *trieNode {
	cur := u.root
	for _, c := range word {
		if cur = cur.children[c]; cur == nil {
			return nil
		}
	}
	return cur
}

// Insert word. Returns true iff word wasn't already present. The empty
// string is a valid word.
// Time: O(len(word))
func (u *Trie) Insert(word string) bool {
	cur := u.root
	for _, c := range word {
		next := cur.children[c]
		if next == nil {
			next = makeTrieNode()
			cur.children[c] = next
		}
		cur = next
	}
	if cur.terminal {
		return false
	}
	cur.terminal = true
	u.sz++
	return true
}

// Has word, exactly; prefixes of inserted words don't count.
// Time: O(len(word))
func (u *Trie) Has(word string) bool {
	n := u.find(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether any inserted word starts with prefix.
// Time: O(len(prefix))
func (u *Trie) HasPrefix(prefix string) bool {
	return u.find(prefix) != nil
}

// remove word[i:] below cur, pruning nodes that end up childless and
// non-terminal. Reports whether cur itself should be deleted by its parent.
func remove(cur *trieNode, word []rune, i int) bool {
	if i == len(word) {
		cur.terminal = false
		return len(cur.children) == 0
	}
	child := cur.children[word[i]]
	if remove(child, word, i+1) {
		delete(cur.children, word[i])
	}
	return !cur.terminal && len(cur.children) == 0
}

// Remove word. Returns true iff word was present. Recursive.
// Time: O(len(word))
func (u *Trie) Remove(word string) bool {
	if !u.Has(word) {
		return false
	}
	remove(u.root, []rune(word), 0)
	u.sz--
	return true
}

// collect every word below cur into out, prefixed by soFar. Order is
// unspecified.
func collect(cur *trieNode, soFar []rune, out *[]string) {
	if cur.terminal {
		*out = append(*out, string(soFar))
	}
	for c, child := range cur.children {
		collect(child, append(soFar, c), out)
	}
}

// WithPrefix returns every inserted word starting with prefix, in
// unspecified order.
func (u *Trie) WithPrefix(prefix string) []string {
	out := []string{}
	if n := u.find(prefix); n != nil {
		collect(n, []rune(prefix), &out)
	}
	return out
}

// Words returns every inserted word, in unspecified order.
func (u *Trie) Words() []string {
	return u.WithPrefix("")
}

// LongestCommonPrefix shared by all inserted words; "" if the trie is empty
// or the words diverge immediately.
func (u *Trie) LongestCommonPrefix() string {
	var out []rune
	for cur := u.root; len(cur.children) == 1 && !cur.terminal; {
		for c, child := range cur.children {
			out = append(out, c)
			cur = child
		}
	}
	return string(out)
}

// Size is the number of distinct words.
func (u *Trie) Size() uint {
	return u.sz
}

// Empty is Size()==0.
func (u *Trie) Empty() bool {
	return u.sz == 0
}

// Clear discards every word.
func (u *Trie) Clear() {
	u.root, u.sz = makeTrieNode(), 0
}
