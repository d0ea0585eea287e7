package question

// defaultPool backs DefaultPool. Never hand it out directly.
var defaultPool = []Question{
	{Prompt: "What is the capital of Japan?", Choices: [NumChoices]string{"Osaka", "Tokyo", "Kyoto", "Nagoya"}, CorrectIndex: 1},
	{Prompt: "1 + 1 = ?", Choices: [NumChoices]string{"1", "2", "3", "4"}, CorrectIndex: 1},
	{Prompt: "What is the largest ocean on Earth?", Choices: [NumChoices]string{"Atlantic Ocean", "Pacific Ocean", "Indian Ocean", "Arctic Ocean"}, CorrectIndex: 1},
	{Prompt: "What is the national bird of Japan?", Choices: [NumChoices]string{"Crane", "Green pheasant", "Crow", "Sparrow"}, CorrectIndex: 1},
	{Prompt: "How often are the Olympic Games held?", Choices: [NumChoices]string{"Every 2 years", "Every 3 years", "Every 4 years", "Every 5 years"}, CorrectIndex: 2},
	{Prompt: "What is the highest mountain in Japan?", Choices: [NumChoices]string{"Mount Fuji", "Kita-dake", "Hotaka-dake", "Yari-ga-take"}, CorrectIndex: 0},
	{Prompt: "How many days are in a year?", Choices: [NumChoices]string{"364 days", "365 days", "366 days", "367 days"}, CorrectIndex: 1},
	{Prompt: "What is the currency unit of Japan?", Choices: [NumChoices]string{"Yen", "Dollar", "Won", "Yuan"}, CorrectIndex: 0},
	{Prompt: "What is the largest planet in the solar system?", Choices: [NumChoices]string{"Saturn", "Jupiter", "Uranus", "Neptune"}, CorrectIndex: 1},
	{Prompt: "What is the national flower of Japan?", Choices: [NumChoices]string{"Cherry blossom", "Chrysanthemum", "Plum blossom", "Camellia"}, CorrectIndex: 0},
}

// DefaultPool returns the built-in question pool used until a question
// file is loaded. Each call returns a fresh slice.
func DefaultPool() []Question {
	pool := make([]Question, len(defaultPool))
	copy(pool, defaultPool)
	return pool
}

// SampleFile is an example question file in the accepted format.
const SampleFile = `How tall is Mount Fuji?
3776m
3677m
3767m
3867m
1

What is the capital of Japan?
Osaka
Tokyo
Kyoto
Nagoya
2

1 + 1 = ?
1
2
3
4
2

What is the largest ocean on Earth?
Atlantic Ocean
Pacific Ocean
Indian Ocean
Arctic Ocean
2

How often are the Olympic Games held?
Every 2 years
Every 3 years
Every 4 years
Every 5 years
3
`
