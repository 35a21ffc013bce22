package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia-app/internal/trivia"
)

const maxAttempts = 3

type CategoryFetcher interface {
	FetchCategories(ctx context.Context) (*trivia.CategorySet, error)
}

type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, category *trivia.Category, difficulty string) ([]trivia.Question, error)
}

type app struct {
	questions QuestionFetcher
	shuffler  *trivia.Shuffler
	reader    *bufio.Reader
	out       io.Writer
}

// Run loads the categories, then loops: pick a difficulty and a category,
// play the fetched batch, return to the category list. It returns nil when
// the input ends or the user quits.
func Run(ctx context.Context, in io.Reader, out io.Writer, categories CategoryFetcher, questions QuestionFetcher, shuffler *trivia.Shuffler) error {
	fmt.Fprintln(out, "Loading categories...")
	set, err := categories.FetchCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if set.Len() == 0 {
		return errors.New("no categories available")
	}

	a := &app{
		questions: questions,
		shuffler:  shuffler,
		reader:    bufio.NewReader(in),
		out:       out,
	}

	for {
		difficulty, ok, err := a.chooseDifficulty()
		if err != nil {
			return ignoreEOF(err)
		}
		if !ok {
			return nil
		}

		category, ok, err := a.chooseCategory(set, difficulty)
		if err != nil {
			return ignoreEOF(err)
		}
		if !ok {
			continue
		}

		batch, err := a.questions.FetchQuestions(ctx, category, difficulty.String())
		if err != nil {
			fmt.Fprintf(a.out, "\nCould not fetch questions: %v\n", err)
			continue
		}
		if len(batch) == 0 {
			fmt.Fprintf(a.out, "\nNo %s questions available for %s.\n", difficulty, category)
			continue
		}

		if err := a.play(batch); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (a *app) chooseDifficulty() (trivia.Difficulty, bool, error) {
	fmt.Fprint(a.out, "\nDifficulty [easy/medium/hard] (enter for medium, q to quit): ")
	line, err := a.readLine()
	if err != nil {
		return "", false, err
	}
	if strings.EqualFold(line, "q") {
		return "", false, nil
	}
	return trivia.ParseDifficulty(line), true, nil
}

func (a *app) chooseCategory(set *trivia.CategorySet, difficulty trivia.Difficulty) (*trivia.Category, bool, error) {
	sorted := set.Sorted()

	fmt.Fprintln(a.out)
	for idx, category := range sorted {
		fmt.Fprintf(a.out, "%2d. %s (%d)\n", idx+1, category, category.CountFor(difficulty))
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(a.out, "\nCategory number (b to go back): ")
		line, err := a.readLine()
		if err != nil {
			return nil, false, err
		}
		if strings.EqualFold(line, "b") {
			return nil, false, nil
		}

		number, convErr := strconv.Atoi(line)
		if convErr == nil && number >= 1 && number <= len(sorted) {
			return sorted[number-1], true, nil
		}
		fmt.Fprintf(a.out, "Invalid input. Please enter a number 1-%d.\n", len(sorted))
	}

	return nil, false, nil
}

func (a *app) play(batch []trivia.Question) error {
	session := trivia.NewSession(a.shuffler)
	session.Start(batch)

	for session.State() == trivia.StateInProgress {
		question, _ := session.CurrentQuestion()
		choices, _ := session.Choices()
		printQuestion(a.out, session.Index()+1, session.Len(), question, choices)

		advanced := false
		for !advanced {
			fmt.Fprint(a.out, "> ")
			line, err := a.readLine()
			if err != nil {
				session.Quit()
				return err
			}

			input := strings.ToUpper(line)
			switch {
			case input == "H":
				session.Quit()
				fmt.Fprintln(a.out, "\nBack to categories.")
				return nil
			case input == "" || input == "N":
				if !session.NextEnabled() {
					fmt.Fprintln(a.out, "Pick an answer first.")
					continue
				}
				if err := session.Advance(); err != nil {
					return err
				}
				advanced = true
			case len(input) == 1 && input[0] >= 'A' && input[0] <= 'Z':
				correct, err := session.SelectAnswer(int(input[0] - 'A'))
				if err != nil {
					fmt.Fprintf(a.out, "Invalid input. Please enter a letter A-%c.\n", maxLetter(len(choices)))
					continue
				}
				if correct {
					fmt.Fprintln(a.out, "Correct!")
				} else {
					fmt.Fprintf(a.out, "Wrong. Correct answer was %s\n", question.CorrectAnswer)
				}
				fmt.Fprintln(a.out, "Press enter for the next question.")
			default:
				fmt.Fprintf(a.out, "Invalid input. Please enter a letter A-%c.\n", maxLetter(len(choices)))
			}
		}
	}

	fmt.Fprintln(a.out, "\nEnd of quiz. Back to categories.")
	return nil
}

func printQuestion(out io.Writer, number, total int, question trivia.Question, choices []trivia.AnswerChoice) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d: %s\n\n", number, total, question.Text)
	for idx, choice := range choices {
		fmt.Fprintf(out, "%c. %s\n", 'A'+idx, choice.Text)
	}
	fmt.Fprintln(out, "\nAnswer with a letter, n for next, h for home.")
}

func maxLetter(optionCount int) byte {
	if optionCount < 1 {
		return 'A'
	}
	return byte('A' + optionCount - 1)
}

func (a *app) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
