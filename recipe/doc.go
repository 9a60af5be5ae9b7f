// Package recipe builds module graphs from YAML documents.
//
// A recipe names an output node and lists nodes by name, type, sources and
// parameters:
//
//	output: land
//	nodes:
//	  - name: base
//	    type: perlin
//	    octaves: 4
//	  - name: land
//	    type: terrace
//	    sources: [base]
//	    terrace_count: 5
//
// Type names are case-insensitive and ignore '_' and '-' ("ridged_multi"
// and "RidgedMulti" are the same type). Sources are listed in slot order;
// for select and blend that is [a, b, control], for displace it is
// [source, x, y, z]. Parameters left out keep the module defaults.
//
// Build checks names, types, source counts and references, rejects cycles,
// then wires the modules so that every node is built after its sources.
package recipe
