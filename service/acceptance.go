package service

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// AcceptanceData is the data file expected by Acceptance.
const AcceptanceData = `Bella|Cat|Peppy|Fashion|"Fashion first!"
Carmen|Rabbit|Peppy|Nature|"Nature is my friend"
Wendy|Sheep|Peppy|Play|"Let's play!"
Apollo|Eagle|Cranky|Nature|"Pah."
Ankha|Cat|Snooty|Education|"Knowledge is power"
Bob|Cat|Lazy|Play|"Nap time"
Zucker|Octopus|Lazy|Unknown|"Takoyaki"
`

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List species", func(a *biff.A) {
		resp := apiRequest("GET", "/species").Do()
		Save(resp, "List species", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{"Cat", "Eagle", "Octopus", "Rabbit", "Sheep"})
	})

	a.Alternative("List villagers", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers").Do()
		Save(resp, "List villagers", `
			Without the species query parameter every villager is returned,
			sorted by name.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{"Ankha", "Apollo", "Bella", "Bob", "Carmen", "Wendy", "Zucker"})
	})

	a.Alternative("List villagers by species", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers").WithQuery("species", "Cat").Do()
		Save(resp, "List villagers by species", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{"Ankha", "Bella", "Bob"})
	})

	a.Alternative("List villagers - unknown species", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers").WithQuery("species", "Dragon").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{})
	})

	a.Alternative("List hobbies", func(a *biff.A) {
		resp := apiRequest("GET", "/hobbies").Do()
		Save(resp, "List hobbies", `
			Villagers grouped by hobby, always in the same order. Unknown hobbies
			are not listed.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		expectedBody := []JSON{
			{"hobby": "Education", "names": []string{"Ankha"}},
			{"hobby": "Fitness", "names": []string{}},
			{"hobby": "Fashion", "names": []string{"Bella"}},
			{"hobby": "Nature", "names": []string{"Carmen", "Apollo"}},
			{"hobby": "Play", "names": []string{"Wendy", "Bob"}},
			{"hobby": "Music", "names": []string{}},
		}
		biff.AssertEqualJson(resp.BodyJson(), expectedBody)
	})

	a.Alternative("List records", func(a *biff.A) {
		resp := apiRequest("GET", "/records").Do()
		Save(resp, "List records", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		records := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(records), 7)
		biff.AssertEqualJson(records[0], JSON{
			"name":        "Bella",
			"species":     "Cat",
			"personality": "Peppy",
			"hobby":       "Fashion",
			"motto":       `"Fashion first!"`,
		})
	})

	a.Alternative("Get motto", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers/Apollo/motto").Do()
		Save(resp, "Get motto", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":  "Apollo",
			"motto": `"Pah."`,
		})
	})

	a.Alternative("Get motto - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers/Nonexistent/motto").Do()
		Save(resp, "Get motto - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "villager not found",
				"description": "there is no villager with that name",
			},
		})
	})

	a.Alternative("List like-minded", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers/Wendy/likeminded").Do()
		Save(resp, "List like-minded", `
			Villagers sharing personality with the given one, excluding itself.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{"Bella", "Carmen"})
	})

	a.Alternative("List like-minded - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/villagers/Nonexistent/likeminded").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{})
	})

	a.Alternative("Find with filter", func(a *biff.A) {
		resp := apiRequest("POST", "/villagers:find").
			WithBodyJson(JSON{
				"limit": 10,
				"filter": JSON{
					"personality": "Lazy",
				},
			}).Do()
		Save(resp, "Find - with filter", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		names := []string{}
		scanner := bufio.NewScanner(strings.NewReader(resp.BodyString()))
		for scanner.Scan() {
			record := JSON{}
			err := json.Unmarshal(scanner.Bytes(), &record)
			biff.AssertNil(err)
			names = append(names, fmt.Sprint(record["name"]))
		}
		biff.AssertEqual(names, []string{"Bob", "Zucker"})
	})

	a.Alternative("Find - default limit", func(a *biff.A) {
		resp := apiRequest("POST", "/villagers:find").
			WithBodyJson(JSON{}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyString(), `{"name":"Bella","species":"Cat","personality":"Peppy","hobby":"Fashion","motto":"\"Fashion first!\""}`+"\n")
	})

	a.Alternative("Find - unknown field", func(a *biff.A) {
		resp := apiRequest("POST", "/villagers:find").
			WithBodyJson(JSON{
				"filter": JSON{
					"color": "red",
				},
			}).Do()
		Save(resp, "Find - unknown field", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "bad input: unknown field 'color', must be [hobby|motto|name|personality|species]",
				"description": "Bad input",
			},
		})
	})

	a.Alternative("Find - malformed input", func(a *biff.A) {
		resp := apiRequest("POST", "/villagers:find").
			WithBodyString(`{"filter":`).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Not implemented", func(a *biff.A) {
		resp := apiRequest("GET", "/invented/endpoint").Do()
		Save(resp, "Not implemented", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotImplemented)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "not implemented",
				"description": "this endpoint does not exist, please check the documentation",
			},
		})
	})

}
