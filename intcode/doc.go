// Package intcode implements the integer instruction set virtual machine.
//
// An Engine owns a fixed length Memory of signed 64-bit words, an instruction
// pointer, and an input and output Queue. Execute runs the fetch, decode and
// execute loop until the program halts, faults, or needs input it does not
// have yet. Running out of input is not an error: the engine reports
// STATE_BLOCKED, leaves the instruction pointer on the input instruction, and
// resumes from there on the next Execute once a value has been written.
//
// Instruction words carry the opcode in their two low decimal digits and
// one addressing mode digit per parameter above that.
package intcode
