/*
Package knuckleball implements the command-dispatch core of a small
in-memory object server.

Clients submit textual messages of the form

	actor messageName: arg1, arg2, …

A Context routes each message to one of four handlers depending on
what the leading actor token names: a type (Boolean, Character,
Integer, Float, String, Vector<T>, Set<T>, Dictionary<K,V>), the
literal Context keyword, a previously created variable, or the literal
Connection keyword. Every value the server holds is a typed Instance
kept in the Context's registry under a unique, possibly namespaced,
name.

	ctx := knuckleball.NewContext(6, 1e-6, true, nil)
	ctx.Execute(`Integer create: x, withValue: 42`, nil)
	ctx.Execute(`x getValue`, nil) // "42"

Execute never panics and never returns a Go error: every failure,
including a malformed input line, is converted to one of the textual
EXC_* replies described in errors.go before it is returned.
*/
package knuckleball
