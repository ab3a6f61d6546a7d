package vectara

// The generator receives a two-part instruction: a fixed system preamble
// describing the output style, and a user turn that lays out the retrieved
// passages ahead of the literal question. Citations are not inlined by the
// model; the caller appends them as a links list instead.
const promptTemplate = `[
  {
    "role": "system",
    "content": "You answer questions using only the search results provided. Write at most four paragraphs. Combine information from multiple sources into a single coherent answer, and cite named experts when the sources quote them. If the results do not contain the answer, say so plainly. Do not include citation markers or links in your answer."
  },
  {
    "role": "user",
    "content": "Search results:\n#foreach ($qResult in $vectaraQueryResults)[$foreach.index] Title: $esc.java($qResult.docMetadata().title)\nURL: $esc.java($qResult.docMetadata().url)\n$esc.java($qResult.getText())\n\n#end\nQuestion: $esc.java(${vectaraQuery})"
  }
]`
