package question

// Default returns the built-in catalog. The data is known valid, so the
// bank is constructed directly instead of going through NewBank.
func Default() *Bank {
	return &Bank{questions: defaultQuestions()}
}

func defaultQuestions() []Question {
	return []Question{
		{
			Text:         "What is the capital of France?",
			Options:      []string{"London", "Berlin", "Paris", "Madrid"},
			CorrectIndex: 2,
			Category:     "Geography",
			Difficulty:   DifficultyEasy,
		},
		{
			Text:         "Which planet is known as the Red Planet?",
			Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectIndex: 1,
			Category:     "Science",
			Difficulty:   DifficultyEasy,
		},
		{
			Text:         "Who wrote 'Romeo and Juliet'?",
			Options:      []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
			CorrectIndex: 1,
			Category:     "Literature",
			Difficulty:   DifficultyMedium,
		},
		{
			Text:         "What is the largest ocean on Earth?",
			Options:      []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"},
			CorrectIndex: 3,
			Category:     "Geography",
			Difficulty:   DifficultyEasy,
		},
		{
			Text:         "In what year did World War II end?",
			Options:      []string{"1943", "1944", "1945", "1946"},
			CorrectIndex: 2,
			Category:     "History",
			Difficulty:   DifficultyMedium,
		},
		{
			Text:         "What is the speed of light?",
			Options:      []string{"299,792 km/s", "150,000 km/s", "500,000 km/s", "1,000,000 km/s"},
			CorrectIndex: 0,
			Category:     "Science",
			Difficulty:   DifficultyHard,
		},
		{
			Text:         "Which programming language is known for its use in web development?",
			Options:      []string{"Python", "JavaScript", "C++", "Java"},
			CorrectIndex: 1,
			Category:     "Technology",
			Difficulty:   DifficultyMedium,
		},
		{
			Text:         "What is the smallest prime number?",
			Options:      []string{"0", "1", "2", "3"},
			CorrectIndex: 2,
			Category:     "Mathematics",
			Difficulty:   DifficultyEasy,
		},
		{
			Text:         "Who painted the Mona Lisa?",
			Options:      []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
			CorrectIndex: 2,
			Category:     "Art",
			Difficulty:   DifficultyMedium,
		},
		{
			Text:         "What is the chemical symbol for gold?",
			Options:      []string{"Go", "Gd", "Au", "Ag"},
			CorrectIndex: 2,
			Category:     "Science",
			Difficulty:   DifficultyMedium,
		},
	}
}
