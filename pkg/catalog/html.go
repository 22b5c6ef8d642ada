package catalog

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CourseListSelector locates the container whose children are the course blocks.
const CourseListSelector = "div.courselist"

// ErrNoCourseList is returned when a page has no course list container.
var ErrNoCourseList = fmt.Errorf("no %s element found on page", CourseListSelector)

type nodeBlock struct {
	node *html.Node
}

// NewBlock wraps an element node as a Block.
func NewBlock(node *html.Node) Block {
	return nodeBlock{node: node}
}

func (b nodeBlock) HasClass(name string) bool {
	for _, a := range b.node.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if strings.EqualFold(class, name) {
				return true
			}
		}
	}
	return false
}

func (b nodeBlock) TextFragments() []string {
	var fragments []string
	collectText(b.node, &fragments)
	return fragments
}

func (b nodeBlock) Text() string {
	return strings.Join(b.TextFragments(), "")
}

func collectText(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		*out = append(*out, node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, out)
	}
}

// CourseList returns the first course list container of the document.
func CourseList(doc *goquery.Document) (*goquery.Selection, error) {
	sel := doc.Find(CourseListSelector).First()
	if sel.Length() == 0 {
		return nil, ErrNoCourseList
	}
	return sel, nil
}

// Children returns the direct element children of every node in sel as blocks.
func Children(sel *goquery.Selection) []Block {
	children := sel.Children()
	blocks := make([]Block, 0, children.Length())
	for _, n := range children.Nodes {
		blocks = append(blocks, NewBlock(n))
	}
	return blocks
}
