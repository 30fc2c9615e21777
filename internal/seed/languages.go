// Package seed holds the built-in language catalog inserted by the seeding
// routine. The content targets absolute beginners picking their first language.
package seed

import "codekickstart-be/internal/entity"

func Languages() []*entity.Language {
	return []*entity.Language{
		{
			Name:        "Python",
			Icon:        "🐍",
			Slug:        "python",
			Description: "Python is a high-level, interpreted programming language known for its simple syntax and readability.",
			Purpose:     "Perfect for beginners, data science, web development, automation, and artificial intelligence.",
			SortOrder:   1,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Store data in named containers",
					Example: `name = "Alice"
age = 25
is_student = True`,
				},
				{
					Title:       "Functions",
					Description: "Reusable blocks of code",
					Example: `def greet(name):
    return f"Hello, {name}!"

message = greet("World")`,
				},
				{
					Title:       "Loops",
					Description: "Repeat code multiple times",
					Example: `for i in range(5):
    print(f"Count: {i}")

numbers = [1, 2, 3, 4, 5]
for num in numbers:
    print(num * 2)`,
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "Python.org Tutorial", Url: "https://docs.python.org/3/tutorial/", Description: "Official Python tutorial for beginners"},
					{Name: "freeCodeCamp Python", Url: "https://www.freecodecamp.org/learn/scientific-computing-with-python/", Description: "Free interactive Python course"},
					{Name: "W3Schools Python", Url: "https://www.w3schools.com/python/", Description: "Comprehensive Python reference and tutorials"},
				},
				Videos: []entity.ResourceLink{
					{Name: "Python for Everybody", Url: "https://www.youtube.com/watch?v=8DvywoWv6fI", Description: "Complete Python course by freeCodeCamp"},
					{Name: "Corey Schafer Python Tutorials", Url: "https://www.youtube.com/playlist?list=PL-osiE80TeTt2d9bfVyTiXJA-UTHn6WwU", Description: "In-depth Python tutorials for beginners"},
				},
				Books: []entity.BookResource{
					{Name: "Automate the Boring Stuff with Python", Author: "Al Sweigart", Description: "Practical programming for total beginners (free online)"},
					{Name: "Python Crash Course", Author: "Eric Matthes", Description: "A hands-on, project-based introduction to programming"},
				},
			},
		},
		{
			Name:        "JavaScript",
			Icon:        "⚡",
			Slug:        "javascript",
			Description: "JavaScript is the programming language of the web, enabling interactive websites and modern web applications.",
			Purpose:     "Essential for web development, both frontend and backend, mobile apps, and desktop applications.",
			SortOrder:   2,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Store and manipulate data",
					Example: `let name = "Alice";
const age = 25;
var isStudent = true;`,
				},
				{
					Title:       "Functions",
					Description: "Reusable code blocks",
					Example:     "function greet(name) {\n    return `Hello, ${name}!`;\n}\n\nconst add = (a, b) => a + b;",
				},
				{
					Title:       "Loops",
					Description: "Iterate through data",
					Example:     "for (let i = 0; i < 5; i++) {\n    console.log(`Count: ${i}`);\n}\n\nconst numbers = [1, 2, 3, 4, 5];\nnumbers.forEach(num => console.log(num * 2));",
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "MDN Web Docs", Url: "https://developer.mozilla.org/en-US/docs/Web/JavaScript", Description: "Comprehensive JavaScript documentation and tutorials"},
					{Name: "freeCodeCamp JavaScript", Url: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Description: "Interactive JavaScript course with projects"},
					{Name: "JavaScript.info", Url: "https://javascript.info/", Description: "Modern JavaScript tutorial from basics to advanced"},
				},
				Videos: []entity.ResourceLink{
					{Name: "JavaScript Full Course", Url: "https://www.youtube.com/watch?v=PkZNo7MFNFg", Description: "Complete JavaScript course by freeCodeCamp"},
					{Name: "The Net Ninja JavaScript", Url: "https://www.youtube.com/playlist?list=PL4cUxeGkcC9i9Ae2D9Ee1RvylH38dKuET", Description: "JavaScript tutorials for beginners"},
				},
				Books: []entity.BookResource{
					{Name: "Eloquent JavaScript", Author: "Marijn Haverbeke", Description: "A modern introduction to programming (free online)"},
					{Name: "You Don't Know JS", Author: "Kyle Simpson", Description: "Deep dive into JavaScript fundamentals (free online)"},
				},
			},
		},
		{
			Name:        "Java",
			Icon:        "☕",
			Slug:        "java",
			Description: "Java is a robust, object-oriented programming language designed for portability and enterprise applications.",
			Purpose:     "Widely used for enterprise software, Android development, web backends, and large-scale applications.",
			SortOrder:   3,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Typed variables with explicit declarations",
					Example: `String name = "Alice";
int age = 25;
boolean isStudent = true;
double gpa = 3.8;`,
				},
				{
					Title:       "Methods",
					Description: "Functions within classes",
					Example: `public class HelloWorld {
    public static String greet(String name) {
        return "Hello, " + name + "!";
    }

    public static void main(String[] args) {
        System.out.println(greet("World"));
    }
}`,
				},
				{
					Title:       "Loops",
					Description: "Iterate with different loop types",
					Example: `for (int i = 0; i < 5; i++) {
    System.out.println("Count: " + i);
}

int[] numbers = {1, 2, 3, 4, 5};
for (int num : numbers) {
    System.out.println(num * 2);
}`,
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "Oracle Java Tutorials", Url: "https://docs.oracle.com/javase/tutorial/", Description: "Official Java tutorials from Oracle"},
					{Name: "GeeksforGeeks Java", Url: "https://www.geeksforgeeks.org/java/", Description: "Comprehensive Java programming guide"},
					{Name: "W3Schools Java", Url: "https://www.w3schools.com/java/", Description: "Java tutorial with examples and exercises"},
				},
				Videos: []entity.ResourceLink{
					{Name: "Java Full Course", Url: "https://www.youtube.com/watch?v=xk4_1vDrzzo", Description: "Complete Java programming course"},
					{Name: "Derek Banas Java Tutorial", Url: "https://www.youtube.com/watch?v=WPvGqX-TXP0", Description: "Java tutorial in one video"},
				},
				Books: []entity.BookResource{
					{Name: "Head First Java", Author: "Kathy Sierra & Bert Bates", Description: "Beginner-friendly approach to learning Java"},
					{Name: "Java: The Complete Reference", Author: "Herbert Schildt", Description: "Comprehensive Java programming guide"},
				},
			},
		},
		{
			Name:        "C++",
			Icon:        "⚙️",
			Slug:        "cpp",
			Description: "C++ is a powerful, low-level programming language that offers fine control over system resources.",
			Purpose:     "Used for system programming, game development, embedded systems, and performance-critical applications.",
			SortOrder:   4,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Strongly typed variables",
					Example: `#include <iostream>
#include <string>

std::string name = "Alice";
int age = 25;
bool isStudent = true;
double gpa = 3.8;`,
				},
				{
					Title:       "Functions",
					Description: "Function definitions and declarations",
					Example: `#include <iostream>
#include <string>

std::string greet(std::string name) {
    return "Hello, " + name + "!";
}

int main() {
    std::cout << greet("World") << std::endl;
    return 0;
}`,
				},
				{
					Title:       "Loops",
					Description: "Different types of loops",
					Example: `for (int i = 0; i < 5; i++) {
    std::cout << "Count: " << i << std::endl;
}

int numbers[] = {1, 2, 3, 4, 5};
for (int num : numbers) {
    std::cout << num * 2 << std::endl;
}`,
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "cplusplus.com", Url: "https://www.cplusplus.com/doc/tutorial/", Description: "Comprehensive C++ tutorial and reference"},
					{Name: "GeeksforGeeks C++", Url: "https://www.geeksforgeeks.org/c-plus-plus/", Description: "C++ programming tutorials and examples"},
					{Name: "W3Schools C++", Url: "https://www.w3schools.com/cpp/", Description: "C++ tutorial with interactive examples"},
				},
				Videos: []entity.ResourceLink{
					{Name: "C++ Full Course", Url: "https://www.youtube.com/watch?v=vLnPwxZdW4Y", Description: "Complete C++ programming course"},
					{Name: "The Cherno C++", Url: "https://www.youtube.com/playlist?list=PLlrATfBNZ98dudnM48yfGUldqGD0S4FFb", Description: "In-depth C++ series for beginners to advanced"},
				},
				Books: []entity.BookResource{
					{Name: "C++ Primer", Author: "Stanley Lippman", Description: "Comprehensive introduction to C++"},
					{Name: "Programming: Principles and Practice Using C++", Author: "Bjarne Stroustrup", Description: "C++ from the creator of the language"},
				},
			},
		},
		{
			Name:        "Dart",
			Icon:        "🎯",
			Slug:        "dart",
			Description: "Dart is a modern programming language optimized for building fast apps on any platform.",
			Purpose:     "Primarily used for Flutter mobile app development, but also for web and server-side development.",
			SortOrder:   5,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Type-safe variables with inference",
					Example: `String name = "Alice";
int age = 25;
bool isStudent = true;
var gpa = 3.8; // Type inferred as double`,
				},
				{
					Title:       "Functions",
					Description: "Functions with optional parameters",
					Example: `String greet(String name, [String greeting = "Hello"]) {
  return '$greeting, $name!';
}

void main() {
  print(greet("World"));
  print(greet("Alice", "Hi"));
}`,
				},
				{
					Title:       "Loops",
					Description: "Modern loop constructs",
					Example: `for (int i = 0; i < 5; i++) {
  print('Count: $i');
}

List<int> numbers = [1, 2, 3, 4, 5];
for (int num in numbers) {
  print(num * 2);
}`,
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "Dart.dev", Url: "https://dart.dev/guides", Description: "Official Dart documentation and tutorials"},
					{Name: "DartPad", Url: "https://dartpad.dev/", Description: "Online Dart editor and playground"},
					{Name: "Flutter Documentation", Url: "https://flutter.dev/docs", Description: "Learn Dart through Flutter development"},
				},
				Videos: []entity.ResourceLink{
					{Name: "Dart Programming Tutorial", Url: "https://www.youtube.com/watch?v=Ej_Pcr4uC2Q", Description: "Complete Dart programming course"},
					{Name: "Flutter & Dart Bootcamp", Url: "https://www.youtube.com/watch?v=x0uinJvhNxI", Description: "Learn Dart through Flutter development"},
				},
				Books: []entity.BookResource{
					{Name: "Learning Dart", Author: "Ivo Balbaert", Description: "Comprehensive guide to Dart programming"},
					{Name: "Flutter in Action", Author: "Eric Windmill", Description: "Learn Dart through Flutter app development"},
				},
			},
		},
		{
			Name:        "Rust",
			Icon:        "🦀",
			Slug:        "rust",
			Description: "Rust is a systems programming language focused on safety, speed, and concurrency.",
			Purpose:     "Used for system programming, web backends, blockchain, and performance-critical applications.",
			SortOrder:   6,
			Concepts: []entity.Concept{
				{
					Title:       "Variables",
					Description: "Immutable by default with ownership",
					Example: `let name = "Alice"; // Immutable
let mut age = 25; // Mutable
let is_student: bool = true;
const MAX_SCORE: u32 = 100;`,
				},
				{
					Title:       "Functions",
					Description: "Functions with explicit return types",
					Example: `fn greet(name: &str) -> String {
    format!("Hello, {}!", name)
}

fn main() {
    let message = greet("World");
    println!("{}", message);
}`,
				},
				{
					Title:       "Loops",
					Description: "Safe iteration with ownership",
					Example: `for i in 0..5 {
    println!("Count: {}", i);
}

let numbers = vec![1, 2, 3, 4, 5];
for num in &numbers {
    println!("{}", num * 2);
}`,
				},
			},
			Resources: entity.LanguageResources{
				Websites: []entity.ResourceLink{
					{Name: "The Rust Book", Url: "https://doc.rust-lang.org/book/", Description: "Official Rust programming language book (free online)"},
					{Name: "Rust by Example", Url: "https://doc.rust-lang.org/rust-by-example/", Description: "Learn Rust through annotated examples"},
					{Name: "Rustlings", Url: "https://github.com/rust-lang/rustlings", Description: "Interactive Rust exercises for beginners"},
				},
				Videos: []entity.ResourceLink{
					{Name: "Rust Programming Course", Url: "https://www.youtube.com/watch?v=zF34dRivLOw", Description: "Complete Rust programming tutorial"},
					{Name: "Let's Get Rusty", Url: "https://www.youtube.com/c/LetsGetRusty", Description: "Rust tutorials and explanations"},
				},
				Books: []entity.BookResource{
					{Name: "Programming Rust", Author: "Jim Blandy & Jason Orendorff", Description: "Fast, safe systems development"},
					{Name: "Rust in Action", Author: "Tim McNamara", Description: "Systems programming concepts and techniques"},
				},
			},
		},
	}
}
