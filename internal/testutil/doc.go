// Package testutil repositorios en memoria para las pruebas de casos de uso.
// Cada fake guarda copias de las entidades: mutar lo devuelto no altera el almacén.
package testutil
