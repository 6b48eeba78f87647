/*
Package heuristic provides strategies which steer a guided exploration of a
bintrie.

A Heuristic decides, at each node, which child positions to visit and in
which order. It is cloned right before a child node is entered and the clone
is notified of the choice taken, so every branch of the search carries its own
copy of the state. Decisions made while exploring one branch never leak into
a sibling branch.

Binary tries choose between bools (false before true in base order), group
tries choose between Groups 0…15.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package heuristic
