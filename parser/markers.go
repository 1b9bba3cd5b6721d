package parser

import (
	"slices"

	"github.com/deepnoodle-ai/esparse/ast"
)

// marker records where a node begins.
type marker struct {
	offset int
	line   int
	col    int
	ok     bool
}

// markerCreate skips to the start of the next token and records the
// position. It is a no-op when neither ranges nor locations are requested.
func (p *Parser) markerCreate() marker {
	if !p.opts.ranges && !p.opts.locations {
		return marker{}
	}
	p.skipComment()
	return p.markerHere()
}

// markerCreatePreserveWhitespace records the current position without
// skipping white space, for markup text.
func (p *Parser) markerCreatePreserveWhitespace() marker {
	if !p.opts.ranges && !p.opts.locations {
		return marker{}
	}
	return p.markerHere()
}

func (p *Parser) markerHere() marker {
	return marker{offset: p.index, line: p.lineNumber, col: p.index - p.lineStart, ok: true}
}

// finishNode applies the location of m, ending at the current position, to
// n and attaches comments.
func finishNode[N ast.Node](p *Parser, m marker, n N) N {
	p.markerApply(m, n)
	return n
}

func (p *Parser) markerApply(m marker, n ast.Node) {
	if !m.ok {
		return
	}
	base := n.Meta()
	if p.opts.ranges {
		base.Range = &ast.Range{m.offset, p.index}
	}
	if p.opts.locations {
		base.Loc = &ast.SourceLocation{
			Start:  ast.Position{Line: m.line, Column: m.col},
			End:    ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart},
			Source: p.opts.source,
		}
	}
	if p.opts.attachComment {
		p.processComment(n)
	}
}

// processComment attaches pending comments to n. Comments that end before
// n starts lead it; comments that start after it ends trail it. Nodes are
// finished inner-first, so a stack of finished nodes ordered by position
// decides which node keeps which comments.
func (p *Parser) processComment(n ast.Node) {
	base := n.Meta()
	if prog, ok := n.(*ast.Program); ok && len(prog.Body) > 0 {
		return
	}

	stack := p.extra.bottomRightStack
	var trailing []*ast.Comment

	if len(p.extra.trailingComments) > 0 {
		if p.extra.trailingComments[0].Range[0] >= base.End() {
			trailing = p.extra.trailingComments
			p.extra.trailingComments = nil
		} else {
			// Mixed leading and trailing comments; leadingComments holds
			// the same entries and is examined below.
			p.extra.trailingComments = nil
		}
	} else if len(stack) > 0 {
		top := stack[len(stack)-1].Meta()
		if len(top.TrailingComments) > 0 && top.TrailingComments[0].Range[0] >= base.End() {
			trailing = top.TrailingComments
			top.TrailingComments = nil
		}
	}

	var lastChild *ast.Base
	for len(stack) > 0 && stack[len(stack)-1].Meta().Start() >= base.Start() {
		lastChild = stack[len(stack)-1].Meta()
		stack = stack[:len(stack)-1]
	}

	if lastChild != nil {
		if lc := lastChild.LeadingComments; len(lc) > 0 && lc[len(lc)-1].Range[1] <= base.Start() {
			base.LeadingComments = lc
			lastChild.LeadingComments = nil
		}
	} else if leading := p.extra.leadingComments; len(leading) > 0 {
		if leading[len(leading)-1].Range[1] <= base.Start() {
			base.LeadingComments = leading
			p.extra.leadingComments = nil
		} else {
			// Statements without a body to hold trailing comments, such as
			// a bare return, end up with every comment queued as leading.
			// Split at the first comment that ends after the node starts.
			i := 0
			for i < len(leading) && leading[i].Range[1] <= base.Start() {
				i++
			}
			if i > 0 {
				base.LeadingComments = slices.Clone(leading[:i])
			}
			if i < len(leading) {
				trailing = slices.Clone(leading[i:])
			}
		}
	}

	if len(trailing) > 0 {
		base.TrailingComments = trailing
	}

	p.extra.bottomRightStack = append(stack, n)
}
