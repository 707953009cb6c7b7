package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetDecodificaRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pacientes" {
			t.Errorf("path inesperado: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"total":2}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	var out struct {
		Success bool `json:"success"`
		Total   int  `json:"total"`
	}
	if err := c.Get(context.Background(), "/pacientes", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !out.Success || out.Total != 2 {
		t.Errorf("respuesta mal decodificada: %+v", out)
	}
}

func TestErrorDelBackendConservaMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"El folio ya existe"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Post(context.Background(), "/recetas", map[string]string{}, nil)
	if err == nil {
		t.Fatal("se esperaba error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("se esperaba APIError, llegó %T", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if got := MensajeUsuario(err); got != "El folio ya existe" {
		t.Errorf("MensajeUsuario = %q, se esperaba el mensaje del backend tal cual", got)
	}
}

func TestErrorSinCuerpoUsaStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Get(context.Background(), "/medicamentos", nil)
	if err == nil {
		t.Fatal("se esperaba error")
	}
	if got := err.Error(); got != "el servidor respondió 500" {
		t.Errorf("mensaje = %q", got)
	}
}

func TestFalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // conexión rechazada

	c := NewClient(srv.URL, time.Second)
	err := c.Get(context.Background(), "/pacientes", nil)
	if !errors.Is(err, ErrSinRespuesta) {
		t.Fatalf("se esperaba ErrSinRespuesta, llegó %v", err)
	}
	if got := MensajeUsuario(err); !strings.HasPrefix(got, "Error de conexión:") {
		t.Errorf("MensajeUsuario = %q", got)
	}
}

func TestTokenDelContextoViajaComoBearer(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := WithToken(context.Background(), "abc123")
	if err := c.Get(ctx, "/recetas", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if auth != "Bearer abc123" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestGetBinaryDevuelveBytesYContentType(t *testing.T) {
	pdf := []byte("%PDF-1.4 contenido")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	datos, ct, err := c.GetBinary(context.Background(), "/reportes/consolidado/pdf")
	if err != nil {
		t.Fatalf("GetBinary: %v", err)
	}
	if ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if string(datos) != string(pdf) {
		t.Errorf("bytes distintos al original")
	}
}
