package test

import (
	"math/rand"
	"strings"
)

// validTokens is a semicolon-delimited sample of lexemes spanning the kinds
// Vesper's lexer recognizes, used to synthesize random but well-formed
// input for lexer benchmarks. It leaves out the `for` keyword, and the `;`
// separator never appears since it is the delimiter here.
const validTokens = "fn;main;let;if;else;while;loop;break;continue;return;(;);{;};:;,;.;;;=;==;!=;<;<=;>;>=;!;&&;||;+;-;*;/;int;float;boolean;string;true;false;counter;total;\"this is a string\";\"\";\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\";123;3.14;0;#a line comment\n"

// GetRandomTokens returns size lexemes drawn from validTokens, space-separated.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep returns size lexemes drawn from validTokens, joined by sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
