package pathfind

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/costar/core"
)

// Format renders the result of a search from src to dst.
//
// A found path is printed as a trail, each hop labeled with the movie and
// year of the edge that reached it:
//
//	(A)--[M1#@2000]-->(B)--[M2#@2005]-->(C)
//
// When ok is false the line reads "Path from <src> to <dst> doesn't exist."
func Format(g *core.Graph, tree *core.Tree, src, dst string, ok bool) string {
	if !ok || g == nil || tree == nil {
		return missing(src, dst)
	}
	id, found := g.FindNode(dst)
	if !found {
		return missing(src, dst)
	}
	steps := tree.PathTo(id)
	if len(steps) == 0 {
		return missing(src, dst)
	}

	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString("--[")
			b.WriteString(s.Movie)
			b.WriteString("#@")
			b.WriteString(strconv.Itoa(s.Year))
			b.WriteString("]-->")
		}
		b.WriteByte('(')
		b.WriteString(g.Name(s.Node))
		b.WriteByte(')')
	}

	return b.String()
}

func missing(src, dst string) string {
	return fmt.Sprintf("Path from %s to %s doesn't exist.", src, dst)
}

// WriteTrails writes Header followed by one line per trail.
func WriteTrails(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return err
		}
	}

	return bw.Flush()
}
