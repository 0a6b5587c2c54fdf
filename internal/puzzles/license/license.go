// Package license decodes the navigation license tree.
//
// The license is a flat list of integers. Each node is a header (child
// count, metadata count) followed by its children and then its metadata.
package license

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chronal/internal/core"
)

var (
	// ErrMalformedNumber marks a token that is not a non-negative integer.
	ErrMalformedNumber = errors.New("license: malformed number")
	// ErrTruncated is returned when the numbers end inside a node.
	ErrTruncated = errors.New("license: truncated input")
	// ErrTrailingData is returned when numbers remain after the root node.
	ErrTrailingData = errors.New("license: trailing data after root node")
)

// Node owns its children in input order.
type Node struct {
	Children []*Node
	Metadata []int
}

// Parse reads the whitespace separated numbers.
func Parse(input []byte) ([]int, error) {
	fields := strings.Fields(string(input))
	nums := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedNumber, i+1, f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

type frame struct {
	node     *Node
	children int // still to read
	metadata int
}

// Decode builds the tree with an explicit work stack, so deep trees do not
// grow the goroutine stack.
func Decode(nums []int) (*Node, error) {
	pos := 0
	header := func() (frame, error) {
		if pos+2 > len(nums) {
			return frame{}, fmt.Errorf("%w: header at %d", ErrTruncated, pos)
		}
		f := frame{node: &Node{}, children: nums[pos], metadata: nums[pos+1]}
		pos += 2
		return f, nil
	}

	root, err := header()
	if err != nil {
		return nil, err
	}
	stack := []frame{root}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.children > 0 {
			top.children--
			child, err := header()
			if err != nil {
				return nil, err
			}
			top.node.Children = append(top.node.Children, child.node)
			stack = append(stack, child)
			continue
		}
		if pos+top.metadata > len(nums) {
			return nil, fmt.Errorf("%w: %d metadata entries at %d", ErrTruncated, top.metadata, pos)
		}
		top.node.Metadata = append([]int(nil), nums[pos:pos+top.metadata]...)
		pos += top.metadata
		stack = stack[:len(stack)-1]
	}
	if pos != len(nums) {
		return nil, fmt.Errorf("%w: %d numbers left", ErrTrailingData, len(nums)-pos)
	}
	return root.node, nil
}

// MetadataSum adds up the metadata of every node in the tree.
func (n *Node) MetadataSum() int {
	sum := 0
	pending := []*Node{n}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, m := range cur.Metadata {
			sum += m
		}
		pending = append(pending, cur.Children...)
	}
	return sum
}

// Value of a leaf is its metadata sum. For other nodes each metadata entry
// is a 1-based child reference and the value is the sum of the referenced
// children's values; references to missing children count as zero.
func (n *Node) Value() int {
	if len(n.Children) == 0 {
		sum := 0
		for _, m := range n.Metadata {
			sum += m
		}
		return sum
	}
	memo := make(map[int]int, len(n.Children))
	value := 0
	for _, ref := range n.Metadata {
		if ref < 1 || ref > len(n.Children) {
			continue
		}
		v, ok := memo[ref]
		if !ok {
			v = n.Children[ref-1].Value()
			memo[ref] = v
		}
		value += v
	}
	return value
}

type puzzle struct{}

func (puzzle) Name() string { return "license" }

func (puzzle) Solve(input []byte) (core.Answers, error) {
	nums, err := Parse(input)
	if err != nil {
		return nil, err
	}
	root, err := Decode(nums)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, root.MetadataSum()), core.Part(2, root.Value())}, nil
}

func init() {
	core.Register("license", func(map[string]string) core.Puzzle { return puzzle{} })
}
