package recipe

import "errors"

var (
	// ErrEmptyRecipe indicates a document without nodes.
	ErrEmptyRecipe = errors.New("recipe: no nodes")

	// ErrUnnamedNode indicates a node without a name or without a type.
	ErrUnnamedNode = errors.New("recipe: node name and type are required")

	// ErrDuplicateName indicates two nodes sharing a name.
	ErrDuplicateName = errors.New("recipe: duplicate node name")

	// ErrUnknownType indicates a node type with no module behind it.
	ErrUnknownType = errors.New("recipe: unknown node type")

	// ErrUnknownSource indicates a source or output naming no node.
	ErrUnknownSource = errors.New("recipe: unknown source")

	// ErrArity indicates a node listing a different number of sources than its type takes.
	ErrArity = errors.New("recipe: wrong number of sources")

	// ErrCycleDetected indicates a node that is its own (transitive) source.
	ErrCycleDetected = errors.New("recipe: cycle detected")

	// ErrParam indicates a malformed parameter value.
	ErrParam = errors.New("recipe: invalid parameter")
)
