package basic

import (
	"fmt"
	"github.com/danswartzendruber/avl"
	"github.com/goforj/godump"
	"github.com/tevino/abool/v2"
)

//
// The program store.  Each numbered line is a node in an AVL tree
// keyed by line number, holding both the source text and the parsed
// statement, so there can never be a parsed statement without its
// source line.  In-order traversal of the tree is both the listing
// order and the execution order
//
// The cursor is the line RUN executes next.  cursorValid false is the
// 'none' state
//

func NewProgram(cfg Config, con *Console) *Program {

	prog := &Program{
		con:         con,
		traceDump:   cfg.TraceDump,
		printStats:  cfg.Stats,
		interrupted: abool.New(),
		running:     abool.New(),
	}

	prog.Clear()

	return prog
}

func cmpIntKey(key any, node any) int {

	return cmpIntItems(key.(int), node.(*lineNode).lineNo)
}

func cmpIntLnode(node1, node2 any) int {

	return cmpIntItems(node1.(*lineNode).lineNo, node2.(*lineNode).lineNo)
}

func cmpIntItems(item1, item2 int) int {

	if item1 < item2 {
		return -1
	} else if item1 > item2 {
		return 1
	} else {
		return 0
	}
}

//
// Wrappers around the AVL package, so nothing else has to deal with
// the untyped interface
//

func (prog *Program) firstInOrder() *lineNode {

	if prog.numLines == 0 {
		return nil
	}

	p := avl.AvlTreeFirstInOrder(prog.root)
	if p != nil {
		return p.(*lineNode)
	}

	return nil
}

func (prog *Program) nextInOrder(node *lineNode) *lineNode {

	p := avl.AvlTreeNextInOrder(&node.avl)
	if p != nil {
		return p.(*lineNode)
	}

	return nil
}

func (prog *Program) lookup(lineNo int) *lineNode {

	if prog.numLines == 0 {
		return nil
	}

	p := avl.AvlTreeLookup(prog.root, lineNo, cmpIntKey)
	if p != nil {
		return p.(*lineNode)
	}

	return nil
}

func (prog *Program) insert(node *lineNode) {

	p := avl.AvlTreeInsert(&prog.root, &node.avl, node, cmpIntLnode)
	if p != nil {
		prog.con.fatalError(fmt.Sprintf("line %d already in tree???", node.lineNo))
		return
	}

	prog.numLines++
}

func (prog *Program) remove(node *lineNode) {

	avl.AvlTreeRemove(&prog.root, &node.avl)

	prog.numLines--
}

//
// Enter a numbered line.  ts holds whatever tokens followed the line
// number.  No tokens at all means delete the line.  A tail that
// doesn't parse is reported and the program is left as it was
//

func (prog *Program) AddSourceLine(lineNumber int, line string, ts *TokenSource) {

	if !ts.HasMoreTokens() {
		prog.RemoveSourceLine(lineNumber)
		return
	}

	stmt, err := ParseStatement(ts)
	if err != nil {
		prog.con.report(err)
		return
	}

	if prog.traceDump {
		godump.Fdump(prog.con.out, stmt)
	}

	node := prog.lookup(lineNumber)
	if node != nil {
		node.line = trimWhitespace(line)
	} else {
		node = &lineNode{lineNo: lineNumber, line: trimWhitespace(line)}
		prog.insert(node)
	}

	node.stmt = stmt

	//
	// Any edit readies the program to run from the top
	//

	prog.ResetCursorToFirst()
}

func (prog *Program) RemoveSourceLine(lineNumber int) {

	node := prog.lookup(lineNumber)
	if node == nil {
		return
	}

	prog.remove(node)

	//
	// Don't leave the cursor pointing at a line that isn't there
	//

	if prog.cursorValid && prog.cursor == lineNumber {
		prog.ResetCursorToFirst()
	}
}

func (prog *Program) GetSourceLine(lineNumber int) string {

	if node := prog.lookup(lineNumber); node != nil {
		return node.line
	}

	return ""
}

func (prog *Program) SetParsedStatement(lineNumber int, stmt *Statement) error {

	node := prog.lookup(lineNumber)
	if node == nil {
		return errLineNumber
	}

	node.stmt = stmt

	return nil
}

func (prog *Program) GetParsedStatement(lineNumber int) *Statement {

	if node := prog.lookup(lineNumber); node != nil {
		return node.stmt
	}

	return nil
}

func (prog *Program) Len() int {

	return prog.numLines
}

func (prog *Program) GetFirstLineNumber() (int, bool) {

	if node := prog.firstInOrder(); node != nil {
		return node.lineNo, true
	}

	return 0, false
}

//
// Return the smallest line number greater than lineNumber.  The line
// passed in does not have to exist
//

func (prog *Program) GetNextLineNumber(lineNumber int) (int, bool) {

	if node := prog.lookup(lineNumber); node != nil {
		if next := prog.nextInOrder(node); next != nil {
			return next.lineNo, true
		}
		return 0, false
	}

	for node := prog.firstInOrder(); node != nil; node = prog.nextInOrder(node) {
		if node.lineNo > lineNumber {
			return node.lineNo, true
		}
	}

	return 0, false
}

func (prog *Program) Cursor() (int, bool) {

	return prog.cursor, prog.cursorValid
}

//
// Hand back the line the cursor is on, and move the cursor on to the
// following line (or to none, if this was the last one)
//

func (prog *Program) AdvanceCursorAndReturnCurrent() (int, bool) {

	if !prog.cursorValid {
		return 0, false
	}

	line := prog.cursor

	prog.cursor, prog.cursorValid = prog.GetNextLineNumber(line)

	return line, true
}

//
// Point the cursor at a specific line, which must exist.  On error the
// cursor is left where it was, and reporting is up to the caller
//

func (prog *Program) SetCursor(lineNumber int) error {

	if prog.lookup(lineNumber) == nil {
		return errLineNumber
	}

	prog.cursor = lineNumber
	prog.cursorValid = true

	return nil
}

func (prog *Program) ResetCursorToNone() {

	prog.cursor = 0
	prog.cursorValid = false
}

func (prog *Program) ResetCursorToFirst() {

	prog.cursor, prog.cursorValid = prog.GetFirstLineNumber()
}

func (prog *Program) Clear() {

	prog.root = nil
	prog.numLines = 0

	prog.ResetCursorToNone()
}

//
// Ask a running program to stop at the next statement boundary.
// Returns false if nothing is running
//

func (prog *Program) Interrupt() bool {

	if !prog.running.IsSet() {
		return false
	}

	prog.interrupted.Set()

	return true
}

func (prog *Program) checkInterrupts() bool {

	return prog.interrupted.SetToIf(true, false)
}
