package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown in the (Spanish) client
var FieldLabels = map[string]string{
	// Profile
	"FullName":               "Nombre",
	"Bio":                    "Bio",
	"WhatMakesYouDifferent":  "Qué te hace diferente",
	"FocusAreas":             "Áreas de enfoque",
	"Interests":              "Intereses",
	"Instagram":              "Instagram",
	"LinkedIn":               "LinkedIn",
	"AvatarURL":              "Foto de perfil",
	"Role":                   "Rol",

	// Goals
	"Title":              "Título",
	"Description":        "Descripción",
	"Area":               "Área",
	"Year":               "Año",
	"Status":             "Estado",
	"MacroGoalID":        "Objetivo anual",
	"NormalizedCategory": "Categoría",
	"Week":               "Semana",

	// Evidence / reviews / matches
	"Caption": "Descripción de la evidencia",
	"Notes":   "Notas",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Obligatorio", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Mínimo %s caracteres", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: Selecciona al menos %s", label, param)
		}
		return fmt.Sprintf("%s: Mínimo %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Máximo %s caracteres", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: Selecciona como máximo %s", label, param)
		}
		return fmt.Sprintf("%s: Máximo %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Debe ser uno de: %s", label, strings.Join(strings.Fields(param), ", "))

	case "uuid", "uuid4":
		return fmt.Sprintf("%s: Identificador no válido", label)

	case "url":
		return fmt.Sprintf("%s: URL no válida", label)

	case "valid_name":
		return fmt.Sprintf("%s: Solo letras, espacios y puntuación común", label)

	case "no_emoji":
		return fmt.Sprintf("%s: No puede contener emojis", label)

	case "tag":
		return fmt.Sprintf("%s: Cada etiqueta debe tener entre 1 y 40 caracteres, sin emojis", label)

	case "social_handle":
		return fmt.Sprintf("%s: Usuario o enlace no válido", label)

	case "focus_area":
		return fmt.Sprintf("%s: Área de enfoque desconocida", label)

	case "goal_category":
		return fmt.Sprintf("%s: Categoría desconocida", label)

	default:
		return fmt.Sprintf("%s: Validación fallida (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
