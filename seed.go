package chatcards

var sampleMessages = []Message{
	{Author: "Lexi", Body: "Hey, take a look at this terminal chat demo!"},
	{Author: "Lexi", Body: "Select a card and press enter (or click it) to expand the message. Press it again to collapse."},
	{Author: "Lexi", Body: "Long messages are clamped to a single line while collapsed, so the list stays easy to scan. Expanded messages wrap to the width of the window, however long they get."},
	{Author: "Sam", Body: "Nice. Does it follow my terminal colors?"},
	{Author: "Lexi", Body: "The body text switches between a light and a dark palette. Press t to flip the display mode and watch the text color change on the next render."},
	{Author: "Sam", Body: "And the background?"},
	{Author: "Lexi", Body: "Expanded cards fade to a highlight color. The fade is driven by a spring, so it eases in and out instead of snapping."},
	{Author: "Sam", Body: "Only the cards near the screen are kept around, right?"},
	{Author: "Lexi", Body: "Right. Cards that scroll far enough out of view are dropped, and they come back collapsed when you scroll back to them.\nIt's the same trade-off a lazy list makes on a phone."},
	{Author: "Sam", Body: "Short and sweet."},
	{Author: "Lexi", Body: "Use j/k or the arrow keys to move, g/G to jump to either end and q to quit."},
	{Author: "Sam", Body: "👍"},
}

// SampleMessages returns the built-in seed conversation. Each call returns
// a fresh copy so callers cannot mutate the seed.
func SampleMessages() []Message {
	out := make([]Message, len(sampleMessages))
	copy(out, sampleMessages)
	return out
}
