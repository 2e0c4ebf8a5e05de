// Package parser implements the recursive-descent parser that turns a token
// stream into an abstract syntax tree (AST).
package parser

import (
	"errors"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/diag"
	"github.com/mna/loxwalk/lang/scanner"
	"github.com/mna/loxwalk/lang/token"
)

// Parse tokenizes and parses src, returning the resulting program and any
// diagnostics accumulated along the way (lexical errors from the scanner,
// syntax errors from the parser). Parsing does not stop at the first syntax
// error: it resynchronizes at the next statement boundary so the returned
// program may still be usable for further inspection even when errs is
// non-empty.
func Parse(src []byte) (*ast.Program, diag.List) {
	var p parser
	p.init(src)
	prog := p.parseProgram()
	p.errs.Sort()
	return prog, p.errs
}

var errPanicMode = errors.New("parse: panic mode")

// parser holds the mutable state of a single parse.
type parser struct {
	scanner scanner.Scanner
	errs    diag.List

	tok  token.Token
	span token.Span
	lit  string
}

func (p *parser) init(src []byte) {
	p.scanner.Init(src, func(span token.Span, msg string) {
		p.errs.Add(diag.Parse, span, "%s", msg)
	})
	p.advance()
}

func (p *parser) advance() {
	p.tok, p.span, p.lit = p.scanner.Scan()
}

func (p *parser) pos() token.Pos { return p.span.Start }

// expect consumes the current token if it matches want and returns its
// starting position; otherwise it records a diagnostic and aborts the
// current statement via panic(errPanicMode), to be recovered by parseStmt.
func (p *parser) expect(want token.Token) token.Pos {
	pos := p.pos()
	if p.tok != want {
		p.errorExpected(pos, want.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errs.Add(diag.Parse, token.MakeSpan(pos, pos+1), "%s", msg)
}

func (p *parser) errorExpected(pos token.Pos, want string) {
	msg := "expected " + want
	if pos == p.pos() {
		if p.lit != "" {
			msg += ", found " + p.lit
		} else {
			msg += ", found " + p.tok.GoString()
		}
	}
	p.error(pos, msg)
}

func (p *parser) parseProgram() *ast.Program {
	var prog ast.Program
	for p.tok != token.EOF {
		if stmt := p.parseStmt(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	prog.EOF = p.pos()
	return &prog
}

// syncToks are the tokens parseStmt resynchronizes on after a syntax error:
// either a consumed ';' or a token that starts a new statement.
var syncToks = map[token.Token]bool{
	token.VAR:    true,
	token.FUN:    true,
	token.IF:     true,
	token.WHILE:  true,
	token.FOR:    true,
	token.RETURN: true,
	token.PRINT:  true,
	token.ASSERT: true,
	token.LBRACE: true,
}

func (p *parser) synchronize() {
	for p.tok != token.EOF {
		if p.tok == token.SEMI {
			p.advance()
			return
		}
		if syncToks[p.tok] {
			return
		}
		p.advance()
	}
}

// parseStmt parses a single statement; a bare ";" yields an *ast.EmptyStmt.
// On a syntax error it resynchronizes and returns nil rather than a partial
// node: the error is already recorded in p.errs.
func (p *parser) parseStmt() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch p.tok {
	case token.SEMI:
		pos := p.pos()
		p.advance()
		return &ast.EmptyStmt{Pos: pos}
	case token.VAR:
		return p.parseVarDecl()
	case token.FUN:
		return p.parseFunDecl()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	case token.ASSERT:
		return p.parseAssert()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseVarDecl() *ast.VarDeclStmt {
	start := p.expect(token.VAR)
	name := p.lit
	p.expect(token.IDENT)

	var init ast.Expr = &ast.NilExpr{Pos: p.pos()}
	if p.tok == token.EQ {
		p.advance()
		init = p.parseExpr()
	}
	end := p.expect(token.SEMI)
	return &ast.VarDeclStmt{VarPos: start, Name: name, Init: init, EndPos: end + 1}
}

func (p *parser) parseFunDecl() *ast.FunDeclStmt {
	start := p.expect(token.FUN)
	name := p.lit
	p.expect(token.IDENT)
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.FunDeclStmt{FunPos: start, Name: name, Params: params, Body: body}
}

func (p *parser) parseParams() []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	for p.tok != token.RPAREN && p.tok != token.EOF {
		pos := p.pos()
		name := p.lit
		p.expect(token.IDENT)
		params = append(params, &ast.Param{Pos: pos, Name: name})
		if p.tok != token.COMMA {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)
	return params
}

func (p *parser) parseBlock() *ast.BlockStmt {
	lbrace := p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.BlockStmt{Lbrace: lbrace, Stmts: stmts, Rbrace: rbrace}
}

func (p *parser) parseIf() *ast.IfStmt {
	start := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()

	var els ast.Stmt
	if p.tok == token.ELSE {
		p.advance()
		els = p.parseStmt()
	}
	return &ast.IfStmt{IfPos: start, Cond: cond, Then: then, Else: els}
}

func (p *parser) parseWhile() *ast.WhileStmt {
	start := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{WhilePos: start, Cond: cond, Body: body}
}

// parseFor desugars "for (init; cond; post) body" into the equivalent block
// of a while loop, per the language's definition: the loop variable's scope
// is the synthetic outer block, and post runs at the end of every iteration
// including when body executes a "continue"-like fallthrough (this language
// has no continue, so post simply always runs after body).
func (p *parser) parseFor() ast.Stmt {
	start := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	switch p.tok {
	case token.SEMI:
		p.advance()
	case token.VAR:
		init = p.parseVarDecl()
	default:
		init = p.parseExprStmt()
	}

	var cond ast.Expr
	if p.tok != token.SEMI {
		cond = p.parseExpr()
	} else {
		cond = &ast.BoolExpr{Pos: p.pos(), Val: true}
	}
	p.expect(token.SEMI)

	var post ast.Expr
	if p.tok != token.RPAREN {
		post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	body := p.parseStmt()
	if post != nil {
		body = &ast.BlockStmt{
			Lbrace: body.Span().Start,
			Stmts:  []ast.Stmt{body, &ast.ExprStmt{X: post, EndPos: post.Span().End}},
			Rbrace: body.Span().End,
		}
	}

	loop := ast.Stmt(&ast.WhileStmt{WhilePos: start, Cond: cond, Body: body})
	if init != nil {
		loop = &ast.BlockStmt{
			Lbrace: start,
			Stmts:  []ast.Stmt{init, loop},
			Rbrace: loop.Span().End,
		}
	}
	return loop
}

func (p *parser) parseReturn() *ast.ReturnStmt {
	start := p.expect(token.RETURN)
	var x ast.Expr
	if p.tok != token.SEMI {
		x = p.parseExpr()
	}
	end := p.expect(token.SEMI)
	return &ast.ReturnStmt{ReturnPos: start, X: x, EndPos: end + 1}
}

func (p *parser) parsePrint() *ast.PrintStmt {
	start := p.expect(token.PRINT)
	x := p.parseExpr()
	end := p.expect(token.SEMI)
	return &ast.PrintStmt{PrintPos: start, X: x, EndPos: end + 1}
}

func (p *parser) parseAssert() *ast.AssertStmt {
	start := p.expect(token.ASSERT)
	x := p.parseExpr()
	end := p.expect(token.SEMI)
	return &ast.AssertStmt{AssertPos: start, X: x, EndPos: end + 1}
}

func (p *parser) parseExprStmt() *ast.ExprStmt {
	x := p.parseExpr()
	end := p.expect(token.SEMI)
	return &ast.ExprStmt{X: x, EndPos: end + 1}
}

