package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/recipes/api/oapi"
	"github.com/Leopold1975/recipes/internal/recipes/app"
	"github.com/stretchr/testify/suite"
)

// The suite runs against real postgres and redis instances described by the
// config file named in RECIPES_INTEGRATION_CONFIG. The config should set
// db.reload so every run starts from an empty schema.
const configEnv = "RECIPES_INTEGRATION_CONFIG"

type RecipesSuite struct {
	suite.Suite
	app    app.RecipesApp
	cancel context.CancelFunc
	srv    *httptest.Server
}

func TestRecipesSuite(t *testing.T) {
	if os.Getenv(configEnv) == "" {
		t.Skipf("%s is not set", configEnv)
	}

	suite.Run(t, new(RecipesSuite))
}

func (rs *RecipesSuite) SetupSuite() {
	cfg, err := config.New(os.Getenv(configEnv))
	if err != nil {
		rs.T().Fatalf("cannot get config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)

	a, err := app.New(ctx, cfg)
	if err != nil {
		cancel()
		rs.T().Fatalf("cannot get app error: %v", err)
	}

	rs.app = a
	rs.cancel = cancel
	rs.srv = httptest.NewServer(a.Handler())
}

func (rs *RecipesSuite) TearDownSuite() {
	rs.srv.Close()

	if err := rs.app.Stop(context.Background()); err != nil {
		rs.T().Errorf("cannot stop app error: %v", err)
	}

	rs.cancel()
}

func (rs *RecipesSuite) do(token, method, path string, body, out any) int {
	var buf bytes.Buffer

	if body != nil {
		rs.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequestWithContext(context.Background(), method, rs.srv.URL+"/api"+path, &buf)
	rs.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := rs.srv.Client().Do(req)
	rs.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		rs.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func (rs *RecipesSuite) signup(email string) string {
	code := rs.do("", http.MethodPost, "/user/create", oapi.UserCreateRequest{
		Email: email, Password: "testpass", Name: "Test name",
	}, nil)
	rs.Require().Equal(http.StatusCreated, code)

	var token oapi.Token

	code = rs.do("", http.MethodPost, "/user/token", oapi.TokenRequest{Email: email, Password: "testpass"}, &token)
	rs.Require().Equal(http.StatusOK, code)
	rs.Require().NotEmpty(token.Token)

	return token.Token
}

func (rs *RecipesSuite) TestAssignedIngredients() {
	token := rs.signup("pear@lucie.com")
	other := rs.signup("carrots@lucie.com")

	var pear, carrots, foreign oapi.Attribute

	rs.Require().Equal(http.StatusCreated,
		rs.do(token, http.MethodPost, "/recipe/ingredients", oapi.AttributeRequest{Name: "Pear"}, &pear))
	rs.Require().Equal(http.StatusCreated,
		rs.do(token, http.MethodPost, "/recipe/ingredients", oapi.AttributeRequest{Name: "Carrots"}, &carrots))
	rs.Require().Equal(http.StatusCreated,
		rs.do(other, http.MethodPost, "/recipe/ingredients", oapi.AttributeRequest{Name: "Apple"}, &foreign))

	minutes := 20
	desc := "pears are so good"

	for _, title := range []string{"Chocolate and Pear cake", "Pear crumble"} {
		var created oapi.RecipeDetail

		code := rs.do(token, http.MethodPost, "/recipe/recipes", oapi.RecipeRequest{
			Title:       title,
			Price:       "15.50",
			TimeMinutes: &minutes,
			Description: &desc,
			Ingredients: &[]int64{pear.Id},
		}, &created)
		rs.Require().Equal(http.StatusCreated, code)
		rs.Require().Equal([]oapi.Attribute{pear}, created.Ingredients)
		rs.Require().Equal("15.50", created.Price)
	}

	var all, assigned []oapi.Attribute

	rs.Require().Equal(http.StatusOK, rs.do(token, http.MethodGet, "/recipe/ingredients", nil, &all))
	rs.Require().Equal([]oapi.Attribute{pear, carrots}, all, "ordered by name descending")

	rs.Require().Equal(http.StatusOK, rs.do(token, http.MethodGet, "/recipe/ingredients?assigned_only=1", nil, &assigned))
	rs.Require().Equal([]oapi.Attribute{pear}, assigned, "each assigned row appears once")

	code := rs.do(token, http.MethodPost, "/recipe/recipes", oapi.RecipeRequest{
		Title:       "Apple pie",
		Price:       "7.00",
		TimeMinutes: &minutes,
		Ingredients: &[]int64{foreign.Id},
	}, nil)
	rs.Require().Equal(http.StatusBadRequest, code, "foreign ingredient is rejected")
}

func (rs *RecipesSuite) TestRecipeLifecycle() {
	token := rs.signup("owner@lucie.com")
	other := rs.signup("stranger@lucie.com")

	var tag oapi.Attribute

	rs.Require().Equal(http.StatusCreated,
		rs.do(token, http.MethodPost, "/recipe/tags", oapi.AttributeRequest{Name: "  Dessert  "}, &tag))
	rs.Require().Equal("Dessert", tag.Name)

	rs.Require().Equal(http.StatusBadRequest,
		rs.do(token, http.MethodPost, "/recipe/tags", oapi.AttributeRequest{Name: ""}, nil))

	var otherTags []oapi.Attribute

	rs.Require().Equal(http.StatusOK, rs.do(other, http.MethodGet, "/recipe/tags", nil, &otherTags))
	rs.Require().Empty(otherTags)

	minutes := 30

	var created oapi.RecipeDetail

	rs.Require().Equal(http.StatusCreated, rs.do(token, http.MethodPost, "/recipe/recipes", oapi.RecipeRequest{
		Title:       "Lemon cake",
		Price:       "9.99",
		TimeMinutes: &minutes,
		Tags:        &[]int64{tag.Id},
	}, &created))

	path := fmt.Sprintf("/recipe/recipes/%d", created.Id)

	rs.Require().Equal(http.StatusNotFound, rs.do(other, http.MethodGet, path, nil, nil))

	title := "Orange cake"

	var patched oapi.RecipeDetail

	rs.Require().Equal(http.StatusOK,
		rs.do(token, http.MethodPatch, path, oapi.PatchedRecipeRequest{Title: &title}, &patched))
	rs.Require().Equal(title, patched.Title)
	rs.Require().Equal("9.99", patched.Price)
	rs.Require().Equal([]oapi.Attribute{tag}, patched.Tags)

	var list []oapi.Recipe

	rs.Require().Equal(http.StatusOK,
		rs.do(token, http.MethodGet, fmt.Sprintf("/recipe/recipes?tags=%d", tag.Id), nil, &list))
	rs.Require().Len(list, 1)
	rs.Require().Equal([]int64{tag.Id}, list[0].Tags)

	rs.Require().Equal(http.StatusNoContent, rs.do(token, http.MethodDelete, path, nil, nil))
	rs.Require().Equal(http.StatusNotFound, rs.do(token, http.MethodGet, path, nil, nil))
}
