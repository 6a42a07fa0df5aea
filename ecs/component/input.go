package component

// Input stores the logical key state sampled this tick.
type Input struct {
	Left        bool
	Right       bool
	Sprint      bool
	Jump        bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
