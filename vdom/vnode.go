package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content of the node
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode. A func() stored under the "onClick" attribute
// is moved into OnClick so it is not rendered as an HTML attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// ID returns the node's "id" attribute, or "" if it has none.
func (v *VNode) ID() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	id, _ := v.Attributes["id"].(string)
	return id
}

// FindByID walks the tree depth-first and returns the first node whose id
// matches, or nil.
func (v *VNode) FindByID(id string) *VNode {
	if v == nil || id == "" {
		return nil
	}
	if v.ID() == id {
		return v
	}
	for _, child := range v.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Paragraph creates a <p> VNode with the given text.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1-6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Image creates an <img> VNode with the given source and alt text.
func Image(src, alt string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["src"] = src
	attrs["alt"] = alt
	return NewVNode("img", attrs, nil, "")
}

// Div creates a <div> VNode with the given children.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode. Content wins over children when set.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
