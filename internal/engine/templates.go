package engine

import (
	"fmt"

	"github.com/ld-screen/screening-service/internal/models"
)

// item is the compact authoring form of a template. The correct answer is
// stored by option index so the bank stays easy to audit against the
// source worksheets.
type item struct {
	prompt  string
	options []string
	correct int
	tag     models.MistakeType
}

func build(domain models.Domain, difficulty models.Difficulty, items []item) []models.QuestionTemplate {
	out := make([]models.QuestionTemplate, 0, len(items))
	for i, it := range items {
		out = append(out, models.QuestionTemplate{
			ID:            fmt.Sprintf("%s-%s-%02d", domain, difficulty, i+1),
			Domain:        domain,
			Difficulty:    difficulty,
			Prompt:        it.prompt,
			Options:       it.options,
			CorrectAnswer: it.options[it.correct],
			MistakeTag:    it.tag,
		})
	}
	return out
}

// DefaultTemplates returns the built-in screening item bank, fifteen items
// per domain and difficulty tier.
func DefaultTemplates() []models.QuestionTemplate {
	var all []models.QuestionTemplate

	all = append(all, build(models.DomainReading, models.DifficultyEasy, []item{
		{`Find the word that starts with "a"`, []string{"bat", "car", "ant", "cat"}, 2, models.MistakeLetterReversal},
		{`Which word rhymes with "cat"?`, []string{"dog", "bat", "car", "sun"}, 1, ""},
		{`What letter does "apple" start with?`, []string{"B", "A", "C", "D"}, 1, models.MistakeLetterReversal},
		{`Which word rhymes with "hat"?`, []string{"cat", "dog", "sun", "mop"}, 0, ""},
		{`Find the word that starts with "s"`, []string{"sun", "moon", "cat", "dog"}, 0, models.MistakeLetterReversal},
		{`What letter does "dog" start with?`, []string{"C", "D", "B", "A"}, 1, models.MistakeLetterReversal},
		{`Which word rhymes with "big"?`, []string{"pig", "dog", "cat", "hat"}, 0, ""},
		{`Find the word that starts with "b"`, []string{"bat", "cat", "dog", "rat"}, 0, models.MistakeLetterReversal},
		{`What letter does "cat" start with?`, []string{"A", "C", "B", "D"}, 1, models.MistakeLetterReversal},
		{`Which word rhymes with "ring"?`, []string{"sing", "dog", "cat", "run"}, 0, ""},
		{`Find the word that starts with "m"`, []string{"moon", "cat", "dog", "sun"}, 0, models.MistakeLetterReversal},
		{`What letter does "run" start with?`, []string{"R", "S", "T", "D"}, 0, models.MistakeLetterReversal},
		{`Which word rhymes with "hop"?`, []string{"stop", "cat", "dog", "hat"}, 0, ""},
		{`Find the word that starts with "d"`, []string{"dog", "cat", "bat", "rat"}, 0, models.MistakeLetterReversal},
		{`What letter does "sit" start with?`, []string{"S", "T", "B", "D"}, 0, models.MistakeLetterReversal},
	})...)

	all = append(all, build(models.DomainReading, models.DifficultyMedium, []item{
		{`What is the opposite of "hot"?`, []string{"sad", "cold", "small", "down"}, 1, ""},
		{`Which word means the same as "happy"?`, []string{"sad", "joyful", "angry", "tired"}, 1, models.MistakeSubstitution},
		{`Complete: The dog ___ fast`, []string{"run", "runs", "running", "ran"}, 1, ""},
		{`What is the opposite of "big"?`, []string{"small", "large", "huge", "giant"}, 0, ""},
		{`Which word means the same as "quick"?`, []string{"fast", "slow", "lazy", "tired"}, 0, models.MistakeSubstitution},
		{`Complete: The cat ___ on the mat`, []string{"sit", "sits", "sitting", "sat"}, 1, ""},
		{`What is the opposite of "dark"?`, []string{"light", "dim", "grey", "night"}, 0, ""},
		{`Which word means the same as "sad"?`, []string{"happy", "joyful", "unhappy", "glad"}, 2, models.MistakeSubstitution},
		{`Complete: I ___ my friend yesterday`, []string{"see", "sees", "saw", "seeing"}, 2, ""},
		{`What is the opposite of "clean"?`, []string{"dirty", "neat", "tidy", "fresh"}, 0, ""},
		{`Which word means the same as "kind"?`, []string{"mean", "nice", "cruel", "rude"}, 1, models.MistakeSubstitution},
		{`Complete: She ___ to the store`, []string{"go", "goes", "went", "going"}, 1, ""},
		{`What is the opposite of "young"?`, []string{"old", "new", "small", "fast"}, 0, ""},
		{`Which word means the same as "beautiful"?`, []string{"ugly", "pretty", "bad", "wrong"}, 1, models.MistakeSubstitution},
		{`Complete: We ___ playing games`, []string{"are", "is", "am", "be"}, 0, ""},
	})...)

	all = append(all, build(models.DomainReading, models.DifficultyHard, []item{
		{`Complete the sentence: She ___ to school yesterday`, []string{"go", "went", "goes", "going"}, 1, ""},
		{`Which word is spelled correctly?`, []string{"recieve", "receive", "recive", "receeve"}, 1, models.MistakeSubstitution},
		{`What is the past tense of "swim"?`, []string{"swam", "swimmed", "swum", "swimming"}, 0, ""},
		{`Which sentence is grammatically correct?`, []string{"She go to school", "She goes to school", "She going to school", "She gone to school"}, 1, ""},
		{`What is the past tense of "run"?`, []string{"ran", "runned", "running", "runs"}, 0, ""},
		{`Which word is spelled correctly?`, []string{"occassion", "ocasion", "occasion", "occassoin"}, 2, models.MistakeSubstitution},
		{`Complete: If I ___ you, I would help`, []string{"were", "was", "am", "is"}, 0, ""},
		{`What is the past tense of "eat"?`, []string{"ate", "eated", "eating", "eats"}, 0, ""},
		{`Which word is spelled correctly?`, []string{"definite", "definitly", "definately", "difinate"}, 0, models.MistakeSubstitution},
		{`Complete: They ___ to the park last week`, []string{"went", "go", "goes", "going"}, 0, ""},
		{`What is the past tense of "do"?`, []string{"did", "done", "doing", "does"}, 0, ""},
		{`Which word is spelled correctly?`, []string{"necessary", "neccessary", "necesary", "neccesary"}, 0, models.MistakeSubstitution},
		{`Complete: The teacher ___ a new lesson today`, []string{"teach", "teaches", "teaching", "taught"}, 1, ""},
		{`What is the past tense of "see"?`, []string{"saw", "seen", "seeing", "sees"}, 0, ""},
		{`Which word is spelled correctly?`, []string{"separate", "seperate", "sepearte", "separete"}, 0, models.MistakeSubstitution},
	})...)

	all = append(all, build(models.DomainMath, models.DifficultyEasy, []item{
		{"What is 3 + 4?", []string{"6", "7", "8", "9"}, 1, ""},
		{"What is 9 - 4?", []string{"4", "5", "6", "3"}, 1, ""},
		{"Count: ⭐⭐⭐⭐⭐", []string{"3", "4", "5", "6"}, 2, models.MistakeNumberReversal},
		{"What is 2 + 6?", []string{"7", "8", "9", "6"}, 1, ""},
		{"What is 8 - 3?", []string{"4", "5", "6", "7"}, 1, ""},
		{"Which is larger: 7 or 3?", []string{"7", "3"}, 0, models.MistakeNumberReversal},
		{"What is 5 + 3?", []string{"7", "8", "9", "6"}, 1, ""},
		{"What is 12 - 5?", []string{"6", "7", "8", "9"}, 1, ""},
		{"Count the stars: ⭐⭐⭐", []string{"2", "3", "4", "5"}, 1, models.MistakeNumberReversal},
		{"What is 4 + 4?", []string{"6", "7", "8", "9"}, 2, ""},
		{"What is 10 - 6?", []string{"3", "4", "5", "6"}, 1, ""},
		{"How many: ✌️✌️✌️", []string{"2", "3", "4", "5"}, 1, models.MistakeNumberReversal},
		{"What is 7 + 2?", []string{"8", "9", "10", "7"}, 1, ""},
		{"What is 11 - 4?", []string{"6", "7", "8", "5"}, 1, ""},
		{"Which is smaller: 5 or 9?", []string{"5", "9"}, 0, models.MistakeNumberReversal},
	})...)

	all = append(all, build(models.DomainMath, models.DifficultyMedium, []item{
		{"What is 6 × 7?", []string{"36", "42", "48", "40"}, 1, ""},
		{"What is 20 ÷ 4?", []string{"4", "5", "6", "8"}, 1, ""},
		{"What comes next: 2, 4, 6, 8, ?", []string{"9", "10", "11", "12"}, 1, ""},
		{"What is 8 × 3?", []string{"21", "24", "27", "18"}, 1, ""},
		{"What is 18 ÷ 3?", []string{"5", "6", "7", "9"}, 1, ""},
		{"Complete: 5, 10, 15, 20, ?", []string{"25", "24", "22", "21"}, 0, ""},
		{"What is 4 × 9?", []string{"32", "36", "40", "45"}, 1, ""},
		{"What is 35 ÷ 5?", []string{"6", "7", "8", "5"}, 1, ""},
		{"Complete: 1, 2, 4, 8, ?", []string{"16", "12", "10", "9"}, 0, ""},
		{"What is 7 × 7?", []string{"42", "49", "56", "47"}, 1, ""},
		{"What is 24 ÷ 6?", []string{"3", "4", "6", "8"}, 1, ""},
		{"Complete: 10, 20, 30, 40, ?", []string{"50", "45", "35", "55"}, 0, ""},
		{"What is 9 × 5?", []string{"40", "45", "54", "35"}, 1, ""},
		{"What is 16 ÷ 2?", []string{"6", "8", "4", "12"}, 1, ""},
		{"Complete: 3, 6, 9, 12, ?", []string{"15", "14", "13", "16"}, 0, ""},
	})...)

	all = append(all, build(models.DomainMath, models.DifficultyHard, []item{
		{"Solve: 3 × 4 + 5", []string{"15", "17", "19", "12"}, 1, ""},
		{"If 3x = 12, what is x?", []string{"3", "4", "5", "6"}, 1, ""},
		{"What is 15% of 60?", []string{"6", "7", "8", "9"}, 3, ""},
		{"Solve: 2 × 5 + 7", []string{"15", "17", "19", "12"}, 1, ""},
		{"If 2x + 3 = 11, what is x?", []string{"4", "5", "6", "7"}, 0, ""},
		{"What is 20% of 100?", []string{"15", "20", "25", "30"}, 1, ""},
		{"Solve: 4 × 3 + 6", []string{"16", "18", "20", "14"}, 1, ""},
		{"If x - 5 = 10, what is x?", []string{"10", "15", "20", "25"}, 1, ""},
		{"What is 50% of 80?", []string{"30", "40", "50", "60"}, 1, ""},
		{"Solve: 5 × 2 + 9", []string{"17", "19", "21", "15"}, 1, ""},
		{"If 4x = 20, what is x?", []string{"4", "5", "6", "7"}, 1, ""},
		{"What is 25% of 40?", []string{"8", "9", "10", "12"}, 0, ""},
		{"Solve: 3 × 5 + 4", []string{"17", "19", "21", "15"}, 1, ""},
		{"If x + 7 = 15, what is x?", []string{"6", "7", "8", "9"}, 1, ""},
		{"What is 10% of 50?", []string{"3", "4", "5", "6"}, 2, ""},
	})...)

	all = append(all, build(models.DomainAttention, models.DifficultyEasy, []item{
		{"Count the ⭐s: ⭐🔵⭐⭐🔵⭐", []string{"3", "4", "5", "6"}, 1, models.MistakeMissedTarget},
		{"Which shape is different? 🔵🔵🔴🔵", []string{"1st", "2nd", "3rd", "4th"}, 2, ""},
		{"Find the number: A B 3 C D", []string{"A", "B", "3", "C"}, 2, models.MistakeMissedTarget},
		{"Count the 🔴s: 🔴🔵🔴🔵🔴", []string{"2", "3", "4", "5"}, 1, models.MistakeMissedTarget},
		{"Which is different? 🔵🔵🔵🟢🔵", []string{"1st", "2nd", "3rd", "4th"}, 3, ""},
		{"Find the letter: 1 A 2 B 3", []string{"A", "B", "1", "3"}, 0, models.MistakeMissedTarget},
		{"Count the ⭐s: ⭐🌙⭐🌙⭐", []string{"2", "3", "4", "5"}, 1, models.MistakeMissedTarget},
		{"Which is odd one out? 🔴🔴🟡🔴", []string{"1st", "2nd", "3rd", "4th"}, 2, ""},
		{"Find the symbol: A # B & C", []string{"A", "#", "B", "&"}, 1, models.MistakeMissedTarget},
		{"Count the 🌙s: ⭐🌙⭐🌙⭐🌙", []string{"2", "3", "4", "5"}, 1, models.MistakeMissedTarget},
		{"Which shape is missing? 🔵⬜🔵⬜?", []string{"🔵", "⬜", "🔴", "⬛"}, 0, ""},
		{"Find the number: 5 X 7 Y 9", []string{"5", "X", "7", "Y"}, 0, models.MistakeMissedTarget},
		{"Count the ⬜s: ⬜🔵⬜🔵⬜", []string{"2", "3", "4", "5"}, 1, models.MistakeMissedTarget},
		{"Which is different? 🟢🟢🟢🔴🟢", []string{"1st", "2nd", "3rd", "4th"}, 3, ""},
		{"Find the vowel: B A C D", []string{"B", "A", "C", "D"}, 1, models.MistakeMissedTarget},
	})...)

	all = append(all, build(models.DomainAttention, models.DifficultyMedium, []item{
		{"What comes next: 2, 4, 6, 8, ?", []string{"9", "10", "11", "12"}, 1, models.MistakeSequenceError},
		{"Pattern: ▲▼▲▼▲?", []string{"▲", "▼", "●", "■"}, 1, models.MistakeSequenceError},
		{"Which is the odd one out: 2, 4, 5, 8", []string{"2", "4", "5", "8"}, 2, ""},
		{"What comes next: A, B, A, B, ?", []string{"A", "B", "C", "D"}, 0, models.MistakeSequenceError},
		{"Pattern: 🔵🔵⬜🔵🔵⬜?", []string{"🔵", "⬜", "🔴", "⬛"}, 0, models.MistakeSequenceError},
		{"Which is odd: 6, 12, 18, 25", []string{"6", "12", "18", "25"}, 3, ""},
		{"What comes next: 1, 1, 2, 3, 5, 8, ?", []string{"10", "11", "13", "15"}, 2, models.MistakeSequenceError},
		{"Pattern: ▲ ▼ ▲ ▼ ?", []string{"▲", "▼", "●", "■"}, 0, models.MistakeSequenceError},
		{"Which is odd: apple, banana, cat, orange", []string{"apple", "banana", "cat", "orange"}, 2, ""},
		{"What comes next: Z, Y, X, W, ?", []string{"V", "U", "T", "S"}, 0, models.MistakeSequenceError},
		{"Pattern: ◆ ◆ ● ◆ ◆ ● ?", []string{"◆", "●", "■", "▲"}, 0, models.MistakeSequenceError},
		{"Which is odd: 3, 6, 9, 11", []string{"3", "6", "9", "11"}, 3, ""},
		{"What comes next: 1, 2, 2, 3, 3, 3, ?", []string{"4", "2", "3", "5"}, 0, models.MistakeSequenceError},
		{"Pattern: → ← → ← ?", []string{"→", "←", "↑", "↓"}, 0, models.MistakeSequenceError},
		{"Which is odd: red, blue, green, circle", []string{"red", "blue", "green", "circle"}, 3, ""},
	})...)

	all = append(all, build(models.DomainAttention, models.DifficultyHard, []item{
		{"Find the pattern: 1, 1, 2, 3, 5, 8, ?", []string{"10", "11", "13", "15"}, 2, models.MistakeSequenceError},
		{"Complete: A1, B2, C3, D?", []string{"3", "4", "E4", "D4"}, 1, models.MistakeSequenceError},
		{"What number is missing: 2, 4, _, 8, 10", []string{"5", "6", "7", "8"}, 1, models.MistakeOmission},
		{"Find the pattern: 2, 6, 12, 20, ?", []string{"28", "30", "32", "35"}, 1, models.MistakeSequenceError},
		{"Complete: 1A, 2B, 3C, ?", []string{"4D", "3D", "4E", "5D"}, 0, models.MistakeSequenceError},
		{"What number is missing: 5, 10, 15, _, 25", []string{"20", "18", "17", "22"}, 0, models.MistakeOmission},
		{"Find the pattern: 1, 4, 9, 16, 25, ?", []string{"36", "32", "30", "35"}, 0, models.MistakeSequenceError},
		{"Complete: Triangle, Square, Pentagon, ?", []string{"Hexagon", "Circle", "Octagon", "Star"}, 0, models.MistakeSequenceError},
		{"What number is missing: 1, 1, 2, 3, 5, 8, 13, ?", []string{"21", "15", "18", "20"}, 0, models.MistakeOmission},
		{"Find the pattern: 10, 20, 30, 40, 50, ?", []string{"60", "55", "65", "70"}, 0, models.MistakeSequenceError},
		{"Complete: Red, Orange, Yellow, Green, ?", []string{"Blue", "Purple", "Pink", "Brown"}, 0, models.MistakeSequenceError},
		{"What number is missing: 1, 8, 27, 64, ?", []string{"125", "100", "81", "120"}, 0, models.MistakeOmission},
		{"Find the pattern: ▲, ▲▲, ▲▲▲, ▲▲▲▲, ?", []string{"▲▲▲▲▲", "▲▲", "▲", "▲▲▲"}, 0, models.MistakeSequenceError},
		{"Complete: 1/2, 1/3, 1/4, ?", []string{"1/5", "1/6", "2/5", "1/8"}, 0, models.MistakeSequenceError},
		{"What comes next: 100, 90, 81, 73, ?", []string{"66", "64", "62", "70"}, 0, models.MistakeSequenceError},
	})...)

	all = append(all, build(models.DomainWriting, models.DifficultyEasy, []item{
		{"Complete the sentence: I like to ___", []string{"running", "run", "runs", "ran"}, 1, ""},
		{"Which is spelled correctly?", []string{"hous", "house", "houz", "housee"}, 1, models.MistakeSpellingError},
		{"Choose the correct word: She ___ a teacher", []string{"are", "am", "is", "be"}, 2, ""},
		{"Complete: I ___ happy", []string{"is", "am", "are", "be"}, 1, ""},
		{"Which is spelled correctly?", []string{"cat", "kat", "catt", "ca"}, 0, models.MistakeSpellingError},
		{"Choose: He ___ my friend", []string{"are", "am", "is", "be"}, 2, ""},
		{"Complete: We ___ at school", []string{"is", "am", "are", "be"}, 2, ""},
		{"Which is spelled correctly?", []string{"dog", "dag", "dogg", "ddog"}, 0, models.MistakeSpellingError},
		{"Choose: They ___ happy", []string{"is", "am", "are", "be"}, 2, ""},
		{"Complete: You ___ smart", []string{"is", "am", "are", "be"}, 2, ""},
		{"Which is spelled correctly?", []string{"apple", "aple", "appel", "appl"}, 0, models.MistakeSpellingError},
		{"Choose: The teacher ___ here", []string{"are", "am", "is", "be"}, 2, ""},
		{"Complete: She ___ books", []string{"like", "likes", "liking", "liked"}, 1, ""},
		{"Which is spelled correctly?", []string{"window", "windwo", "windo", "winodw"}, 0, models.MistakeSpellingError},
		{"Choose: It ___ sunny", []string{"are", "am", "is", "be"}, 2, ""},
	})...)

	all = append(all, build(models.DomainWriting, models.DifficultyMedium, []item{
		{"Which sentence is correct?", []string{"She go to school", "She goes to school", "She going to school", "She gone to school"}, 1, ""},
		{"Complete: The ___ cat sat on the mat", []string{"sleep", "sleepy", "sleeps", "slept"}, 1, ""},
		{"Select the correct punctuation:", []string{"What is your name.", "What is your name?", "What is your name!", "What is your name;"}, 1, ""},
		{"Which sentence is correct?", []string{"He play football", "He plays football", "He playing football", "He player football"}, 1, ""},
		{"Complete: I ___ yesterday", []string{"go", "goes", "went", "going"}, 2, ""},
		{"Which is correct grammar?", []string{"She have a dog", "She has a dog", "She having dog", "She had a dogs"}, 1, ""},
		{"Choose correct form: They ___ at home", []string{"was", "were", "is", "be"}, 1, ""},
		{"Complete: The ___ child was happy", []string{"smile", "smiling", "smiled", "smiles"}, 1, ""},
		{"Which sentence is correct?", []string{"I don't know", "I not know", "I doesn't know", "I didn't knows"}, 0, ""},
		{"Complete: She ___ to the park yesterday", []string{"go", "goes", "went", "going"}, 2, ""},
		{"Choose correct form: He ___ his homework", []string{"did", "does", "do", "doing"}, 0, ""},
		{"Which is correct spelling?", []string{"recieve", "receive", "recive", "receeve"}, 1, models.MistakeSpellingError},
		{"Complete: We ___ finished our work", []string{"have", "has", "is", "are"}, 0, ""},
		{"Choose correct tense: She ___ to school every day", []string{"go", "goes", "went", "going"}, 1, ""},
		{"Which sentence is correct?", []string{"You is smart", "You are smart", "You am smart", "You be smart"}, 1, ""},
	})...)

	all = append(all, build(models.DomainWriting, models.DifficultyHard, []item{
		{"Which word is a noun?", []string{"quickly", "happy", "jump", "table"}, 3, ""},
		{"Complete: If she ___ hard, she will succeed", []string{"studied", "studies", "study", "studying"}, 1, ""},
		{"Which sentence uses the correct tense?", []string{"They was playing", "They is playing", "They are playing", "They be playing"}, 2, ""},
		{"Choose the correct usage: ___ books are very interesting", []string{"Their", "There", "They're", "Theirs"}, 0, ""},
		{"Which word is an adverb?", []string{"beautiful", "quickly", "happy", "kind"}, 1, ""},
		{"Complete: By next year, she ___ here for 5 years", []string{"will work", "will have worked", "works", "has worked"}, 1, ""},
		{"Choose correct form: Neither John ___ Mary is available", []string{"nor", "and", "or", "but"}, 0, ""},
		{"Which is a compound sentence?", []string{"She ran fast", "She ran and fell", "She ran through the park", "She was running fast"}, 1, ""},
		{"Complete: ___ done your homework yet?", []string{"Have you", "Has you", "Do you", "Are you"}, 0, ""},
		{"Choose correct agreement: The team ___ winning their games", []string{"is", "are", "was", "were"}, 0, ""},
		{"Which word is an adjective?", []string{"quickly", "beautiful", "sadly", "carefully"}, 1, ""},
		{"Complete: He would have gone if he ___ time", []string{"have", "had", "has", "having"}, 1, ""},
		{"Choose correct punctuation: ___ coming to the party", []string{"Whose", "Who's", "Whos", "Who is"}, 1, ""},
		{"Which shows parallel structure?", []string{"Running and to jump", "Run and jump", "Running and jumping", "To run and jump"}, 2, ""},
		{"Complete: The doctor asked what ___ bothering me", []string{"is", "was", "were", "are"}, 1, ""},
	})...)

	all = append(all, build(models.DomainLogic, models.DifficultyEasy, []item{
		{"If A=1, B=2, what is C?", []string{"1", "2", "3", "4"}, 2, ""},
		{"What comes next: 2, 4, 6, ?", []string{"7", "8", "9", "10"}, 1, models.MistakeSequencingError},
		{"Which does NOT belong: Apple, Banana, Car, Orange", []string{"Apple", "Banana", "Car", "Orange"}, 2, ""},
		{"If 1=A, 2=B, what is 3?", []string{"A", "B", "C", "D"}, 2, ""},
		{"What comes next: 5, 10, 15, ?", []string{"20", "25", "21", "19"}, 0, models.MistakeSequencingError},
		{"Which does NOT belong: Dog, Cat, Bird, Apple", []string{"Dog", "Cat", "Bird", "Apple"}, 3, ""},
		{"If X=10, Y=20, what is Z?", []string{"25", "30", "35", "40"}, 1, ""},
		{"What comes next: 1, 3, 5, ?", []string{"7", "8", "9", "6"}, 0, models.MistakeSequencingError},
		{"Which does NOT belong: Red, Blue, Chair, Green", []string{"Red", "Blue", "Chair", "Green"}, 2, ""},
		{"If first=1, second=2, what is third?", []string{"2", "3", "4", "5"}, 1, ""},
		{"What comes next: 10, 20, 30, ?", []string{"40", "50", "35", "45"}, 0, models.MistakeSequencingError},
		{"Which does NOT belong: Hammer, Nail, Saw, Cloud", []string{"Hammer", "Nail", "Saw", "Cloud"}, 3, ""},
		{"If Hot=Cold, Big=?, then ?=Small", []string{"Tiny", "Large", "Huge", "Little"}, 1, ""},
		{"What comes next: 2, 4, 6, 8, ?", []string{"9", "10", "11", "12"}, 1, models.MistakeSequencingError},
		{"Which does NOT belong: Monday, Tuesday, Blue, Wednesday", []string{"Monday", "Tuesday", "Blue", "Wednesday"}, 2, ""},
	})...)

	all = append(all, build(models.DomainLogic, models.DifficultyMedium, []item{
		{"If 2X + 3 = 7, what is X?", []string{"1", "2", "3", "4"}, 1, ""},
		{"Complete the pattern: A1, B2, C3, ?", []string{"D4", "D3", "E4", "C4"}, 0, models.MistakeSequencingError},
		{"Which is the odd one: 3, 6, 9, 14", []string{"3", "6", "9", "14"}, 3, ""},
		{"If 3X = 12, what is X?", []string{"3", "4", "5", "6"}, 1, ""},
		{"Complete: 1, 4, 9, 16, ?", []string{"25", "20", "24", "26"}, 0, models.MistakeSequencingError},
		{"Which is odd: 2, 4, 6, 9", []string{"2", "4", "6", "9"}, 3, ""},
		{"If X - 5 = 10, what is X?", []string{"10", "15", "20", "25"}, 1, ""},
		{"Complete: 2, 3, 5, 8, ?", []string{"12", "13", "14", "11"}, 0, models.MistakeSequencingError},
		{"Which is odd: Apple, Banana, Car, Orange", []string{"Apple", "Banana", "Car", "Orange"}, 2, ""},
		{"If 4X = 16, what is X?", []string{"3", "4", "5", "6"}, 1, ""},
		{"Complete: A, C, E, G, ?", []string{"I", "H", "J", "K"}, 0, models.MistakeSequencingError},
		{"Which is odd: Red, Circle, Blue, Green", []string{"Red", "Circle", "Blue", "Green"}, 1, ""},
		{"If X + 7 = 15, what is X?", []string{"6", "7", "8", "9"}, 1, ""},
		{"Complete: 10, 5, 10, 5, ?", []string{"10", "5", "0", "15"}, 0, models.MistakeSequencingError},
		{"Which is odd: 1, 2, 3, 4, 7", []string{"1", "2", "4", "7"}, 3, ""},
	})...)

	all = append(all, build(models.DomainLogic, models.DifficultyHard, []item{
		{"If X² = 16, what is X?", []string{"-4", "4", "Both -4 and 4", "Cannot be determined"}, 2, ""},
		{"Complete: 1, 4, 9, 16, 25, ?", []string{"36", "30", "32", "35"}, 0, models.MistakeSequencingError},
		{"All cats are animals. Tom is an animal. So Tom is a cat. Is this correct?", []string{"True", "False", "Sometimes true", "Unknown"}, 1, ""},
		{"If 2X² + 3 = 11, what is X?", []string{"1", "2", "3", "4"}, 1, ""},
		{"Complete: 1, 1, 2, 3, 5, 8, ?", []string{"13", "11", "12", "14"}, 0, models.MistakeSequencingError},
		{"All dogs bark. Fido barks. So Fido is a dog. Is this valid?", []string{"Valid", "Invalid", "Partially valid", "Unknown"}, 1, ""},
		{"If 3X - 2 = 10, what is X?", []string{"2", "3", "4", "5"}, 2, ""},
		{"Complete: 2, 6, 12, 20, 30, ?", []string{"42", "40", "38", "44"}, 0, models.MistakeSequencingError},
		{"Which argument has a logical fallacy?", []string{"All students study. John is a student. So John studies.", "All birds have wings. Robins are birds. So robins have wings.", "All A is B. X is A. So X is B.", "All ice is cold. This is cold. So this is ice."}, 3, ""},
		{"If (X+3)² = 25, what is X?", []string{"2", "-8", "2 or -8", "Cannot be determined"}, 2, ""},
		{"Complete: 1/2, 1/3, 1/4, 1/5, ?", []string{"1/6", "1/7", "2/6", "1/8"}, 0, models.MistakeSequencingError},
		{"Which statement is logically consistent?", []string{"This statement is false.", "A is B and A is not B.", "All bachelors are unmarried.", "Everything I say is a lie."}, 2, ""},
		{"If 5X + 2 = 27, what is X?", []string{"4", "5", "6", "7"}, 1, ""},
		{"Complete: 1, 3, 6, 10, 15, ?", []string{"21", "20", "19", "22"}, 0, models.MistakeSequencingError},
		{"Some A are B. Some B are C. What follows about A and C?", []string{"Some A are C.", "All A are C.", "No A are C.", "Cannot be determined."}, 3, ""},
	})...)

	return all
}
