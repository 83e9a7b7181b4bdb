// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// Prompt specifies the prompt text and the prompt type.
type Prompt struct {
	Type    PromptType
	Content string
}

// PromptType identifies the kind of prompt being displayed. terminal
// implementations can use the type to decide how the prompt is styled.
type PromptType int

// List of prompt types.
const (
	PromptTypeCommand PromptType = iota
	PromptTypeConfirm
)

// String returns the prompt text without decoration. Good for terminals
// with no styling capabilities at all.
func (p Prompt) String() string {
	return p.Content
}
