package view

// Lessons returns the built-in lesson entries in display order.
func Lessons() []Entry {
	return []Entry{
		{
			ID:          Lesson1,
			Title:       "Lesson 1",
			Description: "Models, messages and the update loop",
			New: func() View {
				return NewLesson(Lesson1, "Lesson 1: Models, messages and the update loop",
					"A program is a model plus three functions: Init, Update and View.",
					"Every key press, resize or finished request reaches Update as a message.",
					"Update returns the next model; View renders it as a string.",
					"Nothing touches the screen directly, so the model is the only state.",
				)
			},
		},
		{
			ID:          Lesson2,
			Title:       "Lesson 2",
			Description: "Commands and asynchronous work",
			New: func() View {
				return NewLesson(Lesson2, "Lesson 2: Commands and asynchronous work",
					"Slow work such as an HTTP call is returned from Update as a command.",
					"The runtime executes the command off the event loop.",
					"Its result comes back later as an ordinary message.",
					"Two commands in flight complete in arrival order, not issue order.",
				)
			},
		},
		{
			ID:          Lesson3,
			Title:       "Lesson 3",
			Description: "Composing views on a single surface",
			New: func() View {
				return NewLesson(Lesson3, "Lesson 3: Composing views on a single surface",
					"One surface holds exactly one top-level tree at a time.",
					"Mounting a new tree discards the old one completely.",
					"Views are looked up by key in a registry built once at startup.",
					"An unknown key is an error value, never a silent no-op.",
				)
			},
		},
	}
}
