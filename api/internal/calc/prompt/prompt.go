// Package prompt holds the fixed solve-prompt templates, keyed by subject.
package prompt

import "fmt"

const base = "You have been given an image with some expressions, equations, or problems related to %s, and you need to solve them. " +
	"Note: Use the PEMDAS rule for solving mathematical expressions. PEMDAS stands for the Priority Order: Parentheses, Exponents, Multiplication and Division (from left to right), Addition and Subtraction (from left to right). " +
	"Here is a dictionary of user-assigned variables. If the given expression has any of these variables, use its actual value from this dictionary accordingly: %s. " +
	"CRITICAL: Return ONLY a list of dicts in plain literal syntax. " +
	"DO NOT use backticks, markdown formatting, or any other text. " +
	"DO NOT include language identifiers like 'python' or 'json'. " +
	"Example valid response: [{'expr': '2 + 3', 'result': 5}]"

const mathCases = "YOU CAN HAVE FIVE TYPES OF EQUATIONS/EXPRESSIONS IN THIS IMAGE, AND ONLY ONE CASE SHALL APPLY EVERY TIME: " +
	"Following are the cases: " +
	"1. Simple mathematical expressions like 2 + 2, 3 * 4, 5 / 6, 7 - 8, etc.: In this case, solve and return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"2. Set of Equations like x^2 + 2x + 1 = 0, 3y + 4x = 0, 5x^2 + 6y + 7 = 12, etc.: In this case, solve for the given variable, and the format should be a COMMA SEPARATED LIST OF DICTS, with dict 1 as {'expr': 'x', 'result': 2, 'assign': True} and dict 2 as {'expr': 'y', 'result': 5, 'assign': True}. This example assumes x was calculated as 2, and y as 5. Include as many dicts as there are variables. " +
	"3. Assigning values to variables like x = 4, y = 5, z = 6, etc.: In this case, assign values to variables and return another key in the dict called {'assign': True}, keeping the variable as 'expr' and the value as 'result' in the original dictionary. RETURN AS A LIST OF DICTS. " +
	"4. Analyzing Graphical Math problems, which are word problems represented in drawing form, such as cars colliding, trigonometric problems, problems on the Pythagorean theorem, adding runs from a cricket wagon wheel, etc. These will have a drawing representing some scenario and accompanying information with the image. PAY CLOSE ATTENTION TO DIFFERENT COLORS FOR THESE PROBLEMS. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"5. Detecting Abstract Concepts that a drawing might show, such as love, hate, jealousy, patriotism, or a historic reference to war, invention, discovery, quote, etc. USE THE SAME FORMAT AS OTHERS TO RETURN THE ANSWER, where 'expr' will be the explanation of the drawing, and 'result' will be the abstract concept. "

const physicsCases = "YOU CAN HAVE FIVE TYPES OF PHYSICS PROBLEMS IN THIS IMAGE, AND ONLY ONE CASE SHALL APPLY EVERY TIME: " +
	"Following are the cases: " +
	"1. Simple physics calculations like F = ma, E = mc², v = d/t, etc.: In this case, solve and return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"2. Set of Physics Equations with multiple variables like F = ma, v = u + at, s = ut + ½at², etc.: In this case, solve for the given variable, and the format should be a COMMA SEPARATED LIST OF DICTS, with dict 1 as {'expr': 'F', 'result': 50, 'assign': True} and dict 2 as {'expr': 'a', 'result': 5, 'assign': True}. Include as many dicts as there are variables. " +
	"3. Assigning values to physics variables like m = 10 kg, v = 20 m/s, t = 5 s, etc.: In this case, assign values to variables and return another key in the dict called {'assign': True}, keeping the variable as 'expr' and the value as 'result' in the original dictionary. RETURN AS A LIST OF DICTS. " +
	"4. Analyzing Physics Diagrams like free body diagrams, circuit diagrams, ray diagrams, etc. These will have drawings representing physical scenarios with accompanying information. PAY CLOSE ATTENTION TO DIFFERENT COLORS AND LABELS. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"5. Physics Word Problems represented in drawing form, such as projectile motion, collisions, electrical circuits, etc. These will have a drawing representing some physical scenario and accompanying information. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. "

const chemistryCases = "YOU CAN HAVE FIVE TYPES OF CHEMISTRY PROBLEMS IN THIS IMAGE, AND ONLY ONE CASE SHALL APPLY EVERY TIME: " +
	"Following are the cases: " +
	"1. Simple chemistry calculations like n = m/M, c = n/V, pH = -log[H+], etc.: In this case, solve and return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"2. Set of Chemistry Equations with multiple variables like PV = nRT, c₁V₁ = c₂V₂, etc.: In this case, solve for the given variable, and the format should be a COMMA SEPARATED LIST OF DICTS, with dict 1 as {'expr': 'n', 'result': 2.5, 'assign': True} and dict 2 as {'expr': 'V', 'result': 0.5, 'assign': True}. Include as many dicts as there are variables. " +
	"3. Assigning values to chemistry variables like m = 50 g, M = 18 g/mol, V = 100 mL, etc.: In this case, assign values to variables and return another key in the dict called {'assign': True}, keeping the variable as 'expr' and the value as 'result' in the original dictionary. RETURN AS A LIST OF DICTS. " +
	"4. Analyzing Chemistry Diagrams like molecular structures, chemical equations, titration curves, etc. These will have drawings representing chemical scenarios with accompanying information. PAY CLOSE ATTENTION TO DIFFERENT COLORS, SYMBOLS, AND LABELS. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"5. Chemistry Word Problems represented in drawing form, such as stoichiometry, acid-base reactions, gas laws, etc. These will have a drawing representing some chemical scenario and accompanying information. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. "

const scienceCases = "YOU CAN HAVE FIVE TYPES OF GENERAL SCIENCE PROBLEMS IN THIS IMAGE, AND ONLY ONE CASE SHALL APPLY EVERY TIME: " +
	"Following are the cases: " +
	"1. Simple science calculations like density = mass/volume, speed = distance/time, etc.: In this case, solve and return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"2. Set of Science Equations with multiple variables like P = F/A, E = mgh, etc.: In this case, solve for the given variable, and the format should be a COMMA SEPARATED LIST OF DICTS, with dict 1 as {'expr': 'P', 'result': 1000, 'assign': True} and dict 2 as {'expr': 'F', 'result': 5000, 'assign': True}. Include as many dicts as there are variables. " +
	"3. Assigning values to science variables like m = 100 kg, h = 10 m, g = 9.8 m/s², etc.: In this case, assign values to variables and return another key in the dict called {'assign': True}, keeping the variable as 'expr' and the value as 'result' in the original dictionary. RETURN AS A LIST OF DICTS. " +
	"4. Analyzing Science Diagrams like food webs, water cycles, cell structures, etc. These will have drawings representing scientific concepts with accompanying information. PAY CLOSE ATTENTION TO DIFFERENT COLORS, LABELS, AND ARROWS. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. " +
	"5. Science Word Problems represented in drawing form, such as ecosystem interactions, geological processes, biological systems, etc. These will have a drawing representing some scientific scenario and accompanying information. You need to return the answer in the format of a LIST OF ONE DICT [{'expr': 'given expression', 'result': 'calculated answer'}]. "

const tail = "Analyze the equation or expression in this image and return the answer according to the given rules: Make sure to use extra backslashes for escape characters like \\f -> \\\\f, \\n -> \\\\n, etc. "

var subjectCases = map[string]string{
	"math":      mathCases,
	"physics":   physicsCases,
	"chemistry": chemistryCases,
	"science":   scienceCases,
}

// Build assembles the solve prompt for a subject. Unrecognized subjects fall
// back to the math template. varsJSON is the user-variable dictionary
// serialized as JSON.
func Build(subject, varsJSON string) string {
	cases, ok := subjectCases[subject]
	if !ok {
		cases = mathCases
	}
	return fmt.Sprintf(base, subject, varsJSON) + cases + tail
}
