package mdsite

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockType is the structural classification of a block.
type BlockType int

// Block types in classification priority order.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

var blockTypeNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

// String returns the snake_case name of the block type.
func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return "block(" + strconv.Itoa(int(t)) + ")"
	}
	return blockTypeNames[t]
}

const (
	codeFence       = "```"
	maxHeadingLevel = 6
)

// blockSeparator matches the blank-line boundary between blocks.
var blockSeparator = regexp.MustCompile(`\n{2,}`)

// SplitBlocks splits a document into blocks on blank lines.
// Leading and trailing newlines are trimmed from each block and empty
// blocks are dropped.
func SplitBlocks(markdown string) []string {
	raw := blockSeparator.Split(markdown, -1)
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		b = strings.Trim(b, "\n")
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// ClassifyBlock returns the type of a block. The first matching rule wins:
// heading, code, quote, unordered list, ordered list, then paragraph.
func ClassifyBlock(block string) BlockType {
	if _, ok := headingLevel(block); ok {
		return BlockHeading
	}
	if isFenced(block) {
		return BlockCode
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, ">") }):
		return BlockQuote
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "*") || strings.HasPrefix(l, "-") }):
		return BlockUnorderedList
	case allLines(lines, func(i int, l string) bool { return strings.HasPrefix(l, orderedMarker(i)) }):
		return BlockOrderedList
	}
	return BlockParagraph
}

// headingLevel counts leading '#' characters. A heading needs 1 to 6 of
// them followed by non-blank content.
func headingLevel(block string) (int, bool) {
	n := len(block) - len(strings.TrimLeft(block, "#"))
	if n < 1 || n > maxHeadingLevel {
		return 0, false
	}
	if strings.TrimSpace(block[n:]) == "" {
		return 0, false
	}
	return n, true
}

func isFenced(block string) bool {
	return len(block) >= 2*len(codeFence) &&
		strings.HasPrefix(block, codeFence) &&
		strings.HasSuffix(block, codeFence)
}

// orderedMarker returns the marker expected on the line at index i ("1." for 0).
func orderedMarker(i int) string {
	return strconv.Itoa(i+1) + "."
}

func allLines(lines []string, pred func(int, string) bool) bool {
	for i, l := range lines {
		if !pred(i, l) {
			return false
		}
	}
	return true
}
