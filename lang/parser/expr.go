package parser

import (
	"strconv"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
)

// binopPriority gives the precedence of each binary operator; higher binds
// tighter. Every operator listed is left-associative (assignment, the only
// right-associative operator, is handled separately in parseAssignment).
var binopPriority = map[token.Token]int{
	token.EQL: 1, token.NEQ: 1,
	token.LT: 2, token.LE: 2, token.GT: 2, token.GE: 2,
	token.PLUS: 3, token.MINUS: 3,
	token.STAR: 4, token.SLASH: 4, token.PERCENT: 4,
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

func (p *parser) parseAssignment() ast.Expr {
	left := p.parseSubExpr(0)

	if p.tok == token.EQ {
		if v, ok := left.(*ast.VarExpr); ok {
			eq := p.pos()
			p.advance()
			rhs := p.parseAssignment() // right-associative
			return ast.NewAssignExpr(v.Pos, v.Name, eq, rhs)
		}
		pos := p.pos()
		p.error(pos, "invalid assignment target")
		p.advance()
		return p.parseAssignment()
	}
	return left
}

// parseSubExpr implements precedence climbing over binopPriority, bottoming
// out at unary expressions.
func (p *parser) parseSubExpr(minPriority int) ast.Expr {
	left := p.parseUnary()

	for {
		prio, ok := binopPriority[p.tok]
		if !ok || prio <= minPriority {
			return left
		}
		op, opPos := p.tok, p.pos()
		p.advance()
		right := p.parseSubExpr(prio)
		left = &ast.BinaryExpr{Left: left, Op: op, OpPos: opPos, Right: right}
	}
}

func (p *parser) parseUnary() ast.Expr {
	if p.tok == token.BANG || p.tok == token.MINUS {
		op, pos := p.tok, p.pos()
		p.advance()
		return &ast.UnaryExpr{OpPos: pos, Op: op, Operand: p.parseUnary()}
	}
	return p.parseCall()
}

func (p *parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for p.tok == token.LPAREN {
		p.advance()
		var args []ast.Expr
		for p.tok != token.RPAREN && p.tok != token.EOF {
			args = append(args, p.parseExpr())
			if p.tok != token.COMMA {
				break
			}
			p.advance()
		}
		rparen := p.expect(token.RPAREN)
		expr = &ast.CallExpr{Callee: expr, Args: args, Rparen: rparen}
	}
	return expr
}

func (p *parser) parsePrimary() ast.Expr {
	pos, lit := p.pos(), p.lit
	switch p.tok {
	case token.NUMBER:
		p.advance()
		val, _ := strconv.ParseFloat(lit, 64)
		return &ast.NumberExpr{Pos: pos, Raw: lit, Val: val}
	case token.STRING:
		p.advance()
		return &ast.StringExpr{Pos: pos, Raw: lit, Val: lit}
	case token.TRUE:
		p.advance()
		return &ast.BoolExpr{Pos: pos, Val: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolExpr{Pos: pos, Val: false}
	case token.NIL:
		p.advance()
		return &ast.NilExpr{Pos: pos}
	case token.IDENT:
		p.advance()
		return ast.NewVarExpr(pos, lit)
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner
	case token.FUN:
		return p.parseFunExpr()
	default:
		p.errorExpected(pos, "expression")
		panic(errPanicMode)
	}
}

func (p *parser) parseFunExpr() *ast.FunExpr {
	start := p.expect(token.FUN)
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.FunExpr{FunPos: start, Params: params, Body: body}
}
