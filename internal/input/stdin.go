package input

// StdinLabel is the path reported for lines read from standard input.
const StdinLabel = "stdin"
