package examples

// Lesson is one onboarding card, shown before the simulator. Bodies are
// markdown: the CLI renders them with glamour, the API serves them raw.
type Lesson struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"content"`
}

var lessons = []Lesson{
	{
		ID:    "welcome",
		Title: "Welcome!",
		Body: `# Welcome to the Turing Machine Simulator!

Learn how the simplest computer works.

Today we'll teach a machine to add 1 to a binary number.

*(Don't worry, we'll explain everything step by step!)*`,
	},
	{
		ID:    "what-is-tm",
		Title: "What is a Turing Machine?",
		Body: `# What is a Turing Machine?

A Turing machine is the **simplest possible computer**.
It was invented by Alan Turing in 1936.

It has only **3 parts**:

1. **A TAPE** — like an infinite strip of paper
2. **A HEAD** — that reads and writes on the tape
3. **RULES** — that tell it what to do

That's it! Yet it can compute *anything* a modern computer can.`,
	},
	{
		ID:    "tape",
		Title: "The Tape",
		Body: `# The Tape

The tape is divided into boxes called **"cells"**.
Each cell holds **ONE symbol**.

    | _ | 1 | 0 | 1 | 1 | _ |

- The tape goes on **FOREVER** in both directions
- Empty cells contain "blank" (shown as _)
- Our tape holds binary numbers: **0s and 1s**`,
	},
	{
		ID:    "head",
		Title: "The Head",
		Body: `# The Head

The head points to **ONE cell** at a time.

    | _ | 1 | [0] | 1 | 1 | _ |
              ▲ HEAD

The head can:

- **READ** the symbol in the current cell
- **WRITE** a new symbol
- **MOVE** left or right`,
	},
	{
		ID:    "states",
		Title: "States (Modes)",
		Body: `# States (Modes)

The machine is always in exactly one **state** — think of it as the
machine's current mode or job.

Our adding machine has three:

- **SCAN** — walk right looking for the end of the number
- **ADD** — walk back left, adding 1 and carrying
- **DONE** — finished

Changing state is how the machine "remembers" what it is doing.`,
	},
	{
		ID:    "rules",
		Title: "The Rules",
		Body: `# The Rules

Every rule has the same shape:

> When in state **S** and reading symbol **X**:
> write **Y**, move **left/right/stay**, switch to state **T**.

The machine looks up the rule for its current (state, symbol) pair and
follows it. If no rule matches, the machine stops.`,
	},
	{
		ID:    "binary",
		Title: "Binary Numbers",
		Body: `# Binary Numbers

Computers count with only two digits: **0** and **1**.

| decimal | binary |
|---------|--------|
| 1       | 1      |
| 2       | 10     |
| 3       | 11     |
| 11      | 1011   |
| 12      | 1100   |

Adding 1 works like decimal: **1 + 1 carries**. That carry is exactly
what our ADD state handles.`,
	},
}

// Lessons returns the onboarding deck in reading order.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}
