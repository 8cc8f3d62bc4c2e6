package domain

const captionPrompt = `Describe this image in detail. If this is a screenshot of a computer interface, application, or program:
- Identify the application, program, or website being shown
- Read and include any visible text, window titles, menu items, or UI labels
- Describe the specific content, data, or interface elements displayed
- Note any error messages, dialogs, or notifications
- Include technical details like file paths, URLs, or configuration shown

If this is a regular photo or image, describe the visual content, people, objects, and scene.

Provide a clear and comprehensive caption.`

const renamePrompt = `Look at this image and generate a concise, descriptive filename (without extension) that best describes its content.

If this is a screenshot of a computer interface, application, or program:
- Include the application/program name (e.g., chrome, vscode, terminal, excel)
- Include the main content or purpose shown (e.g., settings-page, error-dialog, code-editor)
- Include key identifiers like page titles, file names, or specific features visible
- Examples: "chrome-security-settings", "vscode-python-debugger", "terminal-git-status"

If this is a regular photo or image:
- Focus on the main subject, people, objects, or scene
- Include location or context if relevant

The filename should be:
- Short and descriptive (ideally 3-8 words)
- Use lowercase letters, numbers, and hyphens only
- No spaces (use hyphens instead)
- No special characters except hyphens

Respond with ONLY the filename, nothing else.`

// Prompt returns the instruction sent to the model together with the image.
func (m ProcessingMode) Prompt() string {
	if m == ModeRename {
		return renamePrompt
	}
	return captionPrompt
}
