// Package prompt supplies answers to generator questions. Provider is
// implemented by Interactive, which reads numbered menus and free text from
// a terminal, and by Preset, which answers from a fixed map so generator
// trees can run unattended and in tests.
package prompt
