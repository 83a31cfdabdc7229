package merkle

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// String draws the tree root first, one node per line.
// A promoted odd tail shows up as a node with a single child.
func (mt *MerkleTree) String() string {
	var sb strings.Builder
	mt.render(&sb, len(mt.layers)-1, 0, "", true)
	return sb.String()
}

func (mt *MerkleTree) render(sb *strings.Builder, layer, index int, prefix string, last bool) {
	sb.WriteString(prefix)
	if last {
		sb.WriteString("└─ ")
	} else {
		sb.WriteString("├─ ")
	}
	node := mt.layers[layer][index]
	sb.WriteString(common.Bytes2Hex(node[:]))
	sb.WriteString("\n")

	if layer == 0 {
		return
	}

	childPrefix := prefix + "│  "
	if last {
		childPrefix = prefix + "   "
	}

	below := mt.layers[layer-1]
	children := []int{2 * index}
	if 2*index+1 < len(below) {
		children = append(children, 2*index+1)
	}
	for i, child := range children {
		mt.render(sb, layer-1, child, childPrefix, i == len(children)-1)
	}
}
