package comic

import (
	"fmt"

	"ai-comicstory-be/pkg/llm"
)

const imageStyleDirective = "bold outlines, vibrant colors, dynamic composition, professional comic art"

const writerInstructionTemplate = `You are a comic book writer. Break down the following story into 4-6 exciting comic panels. Each panel should have:
1. A vivid scene description for illustration
2. Dialogue or narration text (keep it concise and punchy)

Format your response as a JSON array of panels:
[
  {
    "sceneDescription": "Description of what's happening in the panel",
    "text": "Dialogue or narration for this panel"
  }
]

Make it exciting, dynamic, and true to the %s comic style!`

// WriterInstruction is the system message that asks the model for a panel breakdown.
func WriterInstruction(theme string) string {
	return fmt.Sprintf(writerInstructionTemplate, theme)
}

func StoryMessage(title, notes string) string {
	return fmt.Sprintf("Story Title: %s\n\nStory Notes: %s", title, notes)
}

// BuildMessages returns the [system, user] pair sent to the text model.
func BuildMessages(title, notes, theme string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: WriterInstruction(theme)},
		{Role: llm.RoleUser, Content: StoryMessage(title, notes)},
	}
}

func ImagePrompt(theme, sceneDescription string) string {
	return fmt.Sprintf("%s comic book panel: %s. Style: %s.", theme, sceneDescription, imageStyleDirective)
}
