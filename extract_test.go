package raglite_test

import (
	"reflect"
	"sort"
	"testing"

	raglite "github.com/sqltuner/rag-lite"
)

func TestExtractKeywordsEmptyPayload(t *testing.T) {
	keywords := raglite.ExtractKeywords(raglite.Payload{})

	want := append([]string{}, raglite.BaselineTerms...)
	sort.Strings(want)

	if got := keywords.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords(empty) = %v, want baseline terms %v", got, want)
	}
}

func TestExtractKeywordsFromQueries(t *testing.T) {
	p := raglite.Payload{
		Queries: []raglite.Query{
			{SQL: "SELECT name FROM users WHERE id=1", MethodName: "findUserById"},
		},
	}

	keywords := raglite.ExtractKeywords(p)

	for _, want := range []string{"users", "name", "find", "user", "finduserbyid", "sql", "index"} {
		if !keywords.Contains(want) {
			t.Errorf("keywords missing %q, got %v", want, keywords.Sorted())
		}
	}
	// Stopword-length tokens never survive normalization.
	if keywords.Contains("id") {
		t.Errorf("keywords should not contain %q", "id")
	}
}

func TestExtractKeywordsFromMessages(t *testing.T) {
	p := raglite.Payload{
		Messages: []raglite.Message{
			{Role: "user", Content: "optimize the OrderService repository with batch fetching"},
		},
	}

	keywords := raglite.ExtractKeywords(p)

	for _, want := range []string{"repository", "batch", "order", "service"} {
		if !keywords.Contains(want) {
			t.Errorf("keywords missing %q, got %v", want, keywords.Sorted())
		}
	}
}

func TestExtractKeywordsFromCodeUnits(t *testing.T) {
	p := raglite.Payload{
		Repositories: []raglite.CodeUnit{
			{
				"name":   "UserRepository",
				"source": "package com.example.shop\n@Repository\npublic interface UserRepository {\npublic User findUserByEmail()\n}",
			},
		},
		Entities: []raglite.CodeUnit{
			{
				"name":   "User",
				"source": "@Entity\npublic class User {\nprivate String email\n}",
			},
		},
	}

	keywords := raglite.ExtractKeywords(p)

	for _, want := range []string{"userrepository", "repository", "entity", "user", "email", "example", "shop"} {
		if !keywords.Contains(want) {
			t.Errorf("keywords missing %q, got %v", want, keywords.Sorted())
		}
	}
}
