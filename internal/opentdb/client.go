package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL = "https://opentdb.com"
	defaultAmount  = 10

	categoriesPath = "/api_category.php"
	countPath      = "/api_count.php"
	questionsPath  = "/api.php"
)

// RawCategory mirrors one entry of the category list payload.
type RawCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RawCategoryCount mirrors the per-category count payload.
type RawCategoryCount struct {
	Total  int `json:"total_question_count"`
	Easy   int `json:"total_easy_question_count"`
	Medium int `json:"total_medium_question_count"`
	Hard   int `json:"total_hard_question_count"`
}

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// QuestionQuery selects a question batch.
type QuestionQuery struct {
	Amount     int
	CategoryID int
	Difficulty string
}

type categoriesResponse struct {
	Categories []RawCategory `json:"trivia_categories"`
}

type countResponse struct {
	Count RawCategoryCount `json:"category_question_count"`
}

type questionsResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	baseURL string
	getter  Getter
}

func NewClient(baseURL string, getter Getter) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if getter == nil {
		getter = NewHTTPGetter(nil)
	}
	return &Client{baseURL: baseURL, getter: getter}
}

func (c *Client) Categories(ctx context.Context) ([]RawCategory, error) {
	var payload categoriesResponse
	if err := c.getJSON(ctx, StageCategories, c.baseURL+categoriesPath, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

func (c *Client) CategoryCount(ctx context.Context, categoryID int) (RawCategoryCount, error) {
	params := url.Values{}
	params.Set("category", strconv.Itoa(categoryID))

	var payload countResponse
	if err := c.getJSON(ctx, StageCount, c.baseURL+countPath+"?"+params.Encode(), &payload); err != nil {
		return RawCategoryCount{}, err
	}
	return payload.Count, nil
}

func (c *Client) Questions(ctx context.Context, query QuestionQuery) ([]RawQuestion, error) {
	amount := query.Amount
	if amount <= 0 {
		amount = defaultAmount
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	if query.CategoryID > 0 {
		params.Set("category", strconv.Itoa(query.CategoryID))
	}
	if difficulty := strings.ToLower(strings.TrimSpace(query.Difficulty)); difficulty != "" {
		params.Set("difficulty", difficulty)
	}

	var payload questionsResponse
	if err := c.getJSON(ctx, StageQuestions, c.baseURL+questionsPath+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	if payload.ResponseCode != 0 {
		return nil, &ResponseCodeFailure{Stage: StageQuestions, Code: payload.ResponseCode}
	}

	return payload.Results, nil
}

func (c *Client) getJSON(ctx context.Context, stage Stage, reqURL string, dst any) error {
	resp, err := c.getter.Get(ctx, reqURL)
	if err != nil {
		return fmt.Errorf("opentdb %s request: %w", stage, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &FetchFailure{Stage: stage, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(resp.Body, dst); err != nil {
		return &DecodeFailure{Stage: stage, Err: err}
	}
	return nil
}
