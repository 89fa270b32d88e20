package basic

//
// The symbol table.  Every variable is an int32, and there is only
// one scope, so this is just a map plus the set of names that may
// never be bound.  Errors go to the session console
//

type Environment struct {
	symtab   map[string]int32
	keywords map[string]bool
	con      *Console
}

func NewEnvironment(con *Console) *Environment {

	env := &Environment{con: con}

	env.keywords = make(map[string]bool, len(reservedWords))
	for _, kw := range reservedWords {
		env.keywords[kw] = true
	}

	env.Clear()

	return env
}

func (env *Environment) isKeyword(name string) bool {

	return env.keywords[name]
}

//
// Bind a variable.  Trying to bind a reserved word is a syntax error,
// and leaves the table alone
//

func (env *Environment) SetValue(name string, value int32) bool {

	if env.isKeyword(name) {
		env.con.report(errSyntax)
		return false
	}

	env.symtab[name] = value

	return true
}

func (env *Environment) GetValue(name string) (int32, bool) {

	val, ok := env.symtab[name]

	return val, ok
}

func (env *Environment) IsDefined(name string) bool {

	_, ok := env.symtab[name]

	return ok
}

func (env *Environment) Clear() {

	env.symtab = make(map[string]int32)
}
