package pipeline

import (
	"fmt"
	"strings"
)

// grammarPromptTemplate asks for positional edit suggestions as a bare JSON
// array. Offsets are requested in characters so they line up with the rune
// based validation downstream.
const grammarPromptTemplate = `You are a meticulous writing assistant. Analyze the text below for grammar, spelling and punctuation errors.

Respond with ONLY a JSON array (no markdown, no prose). Each element must have exactly these fields:
{"original": "<exact substring being replaced>", "suggested": "<replacement>", "explanation": "<short reason, max 160 chars>", "index": <0-based character offset of the substring>, "endIndex": <exclusive end offset>, "category": "<grammar|spelling|punctuation|style|tone|readability>", "severity": "<low|medium|high>", "confidence": <0.0-1.0>, "sentenceIndex": <0-based sentence number>, "ruleId": "<short rule identifier>", "source": "ai"}

Rules:
- "original" must match the text at [index, endIndex) exactly, character for character.
- Count offsets in characters from the start of the text, starting at 0.
- Return [] if the text has no issues.

Text:
%s`

const enhancePromptTemplate = `You are an expert editor. Suggest improvements to style, tone and readability for the text below. Do not flag correct grammar; focus on making the writing clearer and stronger.

Respond with ONLY a JSON array (no markdown, no prose). Each element must have exactly these fields:
{"original": "<exact substring being replaced>", "suggested": "<replacement>", "explanation": "<short reason, max 160 chars>", "index": <0-based character offset of the substring>, "endIndex": <exclusive end offset>, "category": "<grammar|spelling|punctuation|style|tone|readability>", "severity": "<low|medium|high>", "confidence": <0.0-1.0>, "sentenceIndex": <0-based sentence number>, "ruleId": "<short rule identifier>", "source": "ai"}

Rules:
- "original" must match the text at [index, endIndex) exactly, character for character.
- Count offsets in characters from the start of the text, starting at 0.
- Return [] if nothing would improve the text.

Text:
%s`

// HumanizePrompt is the instruction used by the plain-text humanize surface.
const HumanizePrompt = `Rewrite the following text so it reads naturally, as if written by a person: vary sentence length, soften formulaic phrasing, keep the meaning intact. Respond with only the rewritten text.

Text:
%s`

func buildPrompt(mode, text string) string {
	switch strings.ToLower(mode) {
	case ModeEnhance:
		return fmt.Sprintf(enhancePromptTemplate, text)
	default:
		return fmt.Sprintf(grammarPromptTemplate, text)
	}
}
