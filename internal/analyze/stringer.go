package analyze

// TypeString returns a short, package-qualified representation of a TypeInfo,
// e.g. "[]drive.File", "*drive.UserInfo", "map[string][]string".
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindStruct:
		if t.IsNamed() {
			return DisplayName(t.ID)
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindAlias, TypeKindExternal:
		if t.IsNamed() {
			return DisplayName(t.ID)
		}
		return TypeString(t.Underlying)

	default:
		if t.GoType == nil {
			return "<" + t.Kind.String() + ">"
		}
		return t.GoType.String()
	}
}
