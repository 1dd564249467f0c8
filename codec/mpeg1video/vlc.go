/*
DESCRIPTION
  vlc.go implements a generic variable-length code table: a compact
  (bit pattern, value) source table is compiled once at init() time into a
  flat binary trie that a stream can be decoded against bit by bit,
  mirroring how cavlc.go in the h264 decoder turns a compact coefficient
  token table into a runtime lookup structure.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

import "github.com/ausocean/mpeg1video/bits"

// vlcEntry is one row of a source table: a prefix-free bit pattern
// ("100", "0101", ...) and the value it decodes to.
type vlcEntry struct {
	bits  string
	value int
}

// vlcNode is one node of the compiled trie. left/right are child node
// indices, or -1 where a code of that prefix is illegal.
type vlcNode struct {
	left, right int32
	leaf        bool
	value       int32
}

// vlcTable is a compiled VLC trie, ready for bit-by-bit decoding.
type vlcTable struct {
	nodes []vlcNode
}

func newVLCTable(entries []vlcEntry) *vlcTable {
	t := &vlcTable{nodes: []vlcNode{{left: -1, right: -1}}}
	for _, e := range entries {
		idx := int32(0)
		for i := 0; i < len(e.bits); i++ {
			n := &t.nodes[idx]
			next := n.left
			if e.bits[i] == '1' {
				next = n.right
			}
			if next == -1 {
				t.nodes = append(t.nodes, vlcNode{left: -1, right: -1})
				next = int32(len(t.nodes) - 1)
				if e.bits[i] == '1' {
					t.nodes[idx].right = next
				} else {
					t.nodes[idx].left = next
				}
			}
			idx = next
		}
		t.nodes[idx].leaf = true
		t.nodes[idx].value = int32(e.value)
	}
	return t
}

// decode reads bits from r one at a time, descending the trie, until a
// leaf is reached or the code is found to be illegal.
func (t *vlcTable) decode(r *bits.Reader) (int, error) {
	idx := int32(0)
	for {
		bit := r.Consume(1)
		if bit < 0 {
			return 0, ErrUnexpectedEndOfStream
		}
		n := t.nodes[idx]
		next := n.left
		if bit == 1 {
			next = n.right
		}
		if next == -1 {
			return 0, ErrInvalidVLC
		}
		idx = next
		if t.nodes[idx].leaf {
			return int(t.nodes[idx].value), nil
		}
	}
}
