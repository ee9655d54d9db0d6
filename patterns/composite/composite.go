// Package composite demonstrates the Composite pattern with a file-system
// tree: files and directories share one interface, and directories
// aggregate their children.
package composite

import (
	"fmt"
	"strings"
)

// Node is either a single file or a directory of nodes.
type Node interface {
	Name() string
	Size() int64
	render(sb *strings.Builder, depth int)
}

// File is a leaf node with a fixed size.
type File struct {
	name string
	size int64
}

// NewFile creates a leaf file node.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

func (f *File) render(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s (%d)\n", strings.Repeat("  ", depth), f.name, f.size)
}

// Directory aggregates child nodes and reports their combined size.
type Directory struct {
	name     string
	children []Node
}

// NewDirectory creates an empty directory node.
func NewDirectory(name string) *Directory {
	return &Directory{name: name}
}

// Add appends children and returns the directory for chaining.
func (d *Directory) Add(nodes ...Node) *Directory {
	d.children = append(d.children, nodes...)
	return d
}

func (d *Directory) Name() string { return d.name }

// Size sums the sizes of all nodes beneath this directory.
func (d *Directory) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}
	return total
}

func (d *Directory) render(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s/\n", strings.Repeat("  ", depth), d.name)
	for _, c := range d.children {
		c.render(sb, depth+1)
	}
}

// Render returns an indented listing of the tree rooted at node.
func Render(node Node) string {
	var sb strings.Builder
	node.render(&sb, 0)
	return sb.String()
}
